package catalog

import (
	"sync"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// TheatreService is the registry of theatres, their screens and the
// seats inside each screen.  A single mutex guards all three maps;
// the relationships (screen -> theatre, seat -> screen) are validated
// on creation and never change afterwards.
type TheatreService struct {
	mu          sync.RWMutex
	theatres    map[uint64]*model.Theatre
	screens     map[uint64]*model.Screen
	screenSeats map[uint64][]*model.Seat // screen ID -> seats in creation order
	nextTheatre uint64
	nextScreen  uint64
	nextSeat    uint64
}

// NewTheatreService returns an empty theatre registry.
func NewTheatreService() *TheatreService {
	return &TheatreService{
		theatres:    make(map[uint64]*model.Theatre),
		screens:     make(map[uint64]*model.Screen),
		screenSeats: make(map[uint64][]*model.Seat),
	}
}

// CreateTheatre registers a new theatre and returns it.
func (s *TheatreService) CreateTheatre(name string) *model.Theatre {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTheatre++
	t := &model.Theatre{ID: s.nextTheatre, Name: name, CreatedAt: time.Now().UTC()}
	s.theatres[t.ID] = t
	return t
}

// CreateScreen registers a screen inside an existing theatre.
func (s *TheatreService) CreateScreen(theatreID uint64, name string) (*model.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.theatres[theatreID]; !ok {
		return nil, ErrTheatreNotFound
	}
	s.nextScreen++
	sc := &model.Screen{ID: s.nextScreen, TheatreID: theatreID, Name: name, CreatedAt: time.Now().UTC()}
	s.screens[sc.ID] = sc
	s.screenSeats[sc.ID] = nil
	return sc, nil
}

// CreateSeat registers a seat inside an existing screen.
func (s *TheatreService) CreateSeat(screenID uint64, rowNumber uint32, category model.SeatCategory) (*model.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screens[screenID]; !ok {
		return nil, ErrScreenNotFound
	}
	s.nextSeat++
	seat := &model.Seat{
		ID:        s.nextSeat,
		ScreenID:  screenID,
		RowNumber: rowNumber,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	s.screenSeats[screenID] = append(s.screenSeats[screenID], seat)
	return seat, nil
}

// Theatre returns the theatre with the given ID.
func (s *TheatreService) Theatre(id uint64) (*model.Theatre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.theatres[id]
	if !ok {
		return nil, ErrTheatreNotFound
	}
	return t, nil
}

// Theatres returns all registered theatres in ID order.
func (s *TheatreService) Theatres() []*model.Theatre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Theatre, 0, len(s.theatres))
	for id := uint64(1); id <= s.nextTheatre; id++ {
		if t, ok := s.theatres[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Screen returns the screen with the given ID.
func (s *TheatreService) Screen(id uint64) (*model.Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.screens[id]
	if !ok {
		return nil, ErrScreenNotFound
	}
	return sc, nil
}

// ScreensByTheatre returns the screens of a theatre in ID order.
func (s *TheatreService) ScreensByTheatre(theatreID uint64) ([]*model.Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.theatres[theatreID]; !ok {
		return nil, ErrTheatreNotFound
	}
	out := make([]*model.Screen, 0)
	for id := uint64(1); id <= s.nextScreen; id++ {
		if sc, ok := s.screens[id]; ok && sc.TheatreID == theatreID {
			out = append(out, sc)
		}
	}
	return out, nil
}

// SeatsByScreen returns the seats of a screen in creation order.  The
// returned slice is a copy so callers cannot mutate the registry.
func (s *TheatreService) SeatsByScreen(screenID uint64) ([]*model.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seats, ok := s.screenSeats[screenID]
	if !ok {
		return nil, ErrScreenNotFound
	}
	return append([]*model.Seat(nil), seats...), nil
}

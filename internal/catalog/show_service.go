package catalog

import (
	"sync"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ShowService is the registry of scheduled shows.  A show binds a
// movie to a screen at a start time; its end time is derived from the
// movie duration.
type ShowService struct {
	mu     sync.RWMutex
	shows  map[uint64]*model.Show
	nextID uint64
}

// NewShowService returns an empty show registry.
func NewShowService() *ShowService {
	return &ShowService{shows: make(map[uint64]*model.Show)}
}

// CreateShow schedules a screening of the movie on the screen.
func (s *ShowService) CreateShow(movie *model.Movie, screen *model.Screen, startsAt time.Time) *model.Show {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sh := &model.Show{
		ID:        s.nextID,
		MovieID:   movie.ID,
		ScreenID:  screen.ID,
		StartsAt:  startsAt,
		EndsAt:    startsAt.Add(time.Duration(movie.DurationMinutes) * time.Minute),
		CreatedAt: time.Now().UTC(),
	}
	s.shows[sh.ID] = sh
	return sh
}

// Show returns the show with the given ID.
func (s *ShowService) Show(id uint64) (*model.Show, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shows[id]
	if !ok {
		return nil, ErrShowNotFound
	}
	return sh, nil
}

// Shows returns all scheduled shows in ID order.
func (s *ShowService) Shows() []*model.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Show, 0, len(s.shows))
	for id := uint64(1); id <= s.nextID; id++ {
		if sh, ok := s.shows[id]; ok {
			out = append(out, sh)
		}
	}
	return out
}

// ShowsByMovie returns all shows screening the given movie, in ID order.
func (s *ShowService) ShowsByMovie(movieID uint64) []*model.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Show, 0)
	for id := uint64(1); id <= s.nextID; id++ {
		if sh, ok := s.shows[id]; ok && sh.MovieID == movieID {
			out = append(out, sh)
		}
	}
	return out
}

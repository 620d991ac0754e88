package catalog

import (
	"sync"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// MovieService is the registry of movies.  Movies are immutable once
// created and referenced by shows through their ID.
type MovieService struct {
	mu     sync.RWMutex
	movies map[uint64]*model.Movie
	nextID uint64
}

// NewMovieService returns an empty movie registry.
func NewMovieService() *MovieService {
	return &MovieService{movies: make(map[uint64]*model.Movie)}
}

// CreateMovie registers a new movie and returns it.
func (s *MovieService) CreateMovie(title string, durationMinutes uint32) *model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	m := &model.Movie{
		ID:              s.nextID,
		Title:           title,
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now().UTC(),
	}
	s.movies[m.ID] = m
	return m
}

// Movie returns the movie with the given ID.
func (s *MovieService) Movie(id uint64) (*model.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return m, nil
}

// Movies returns all registered movies in ID order.
func (s *MovieService) Movies() []*model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Movie, 0, len(s.movies))
	for id := uint64(1); id <= s.nextID; id++ {
		if m, ok := s.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

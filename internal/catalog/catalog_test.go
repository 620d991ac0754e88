package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

func TestMovieService(t *testing.T) {
	svc := NewMovieService()

	m1 := svc.CreateMovie("AVENGERS ENDGAME", 181)
	m2 := svc.CreateMovie("BAAHUBALI", 167)
	assert.Equal(t, uint64(1), m1.ID)
	assert.Equal(t, uint64(2), m2.ID)

	got, err := svc.Movie(m1.ID)
	require.NoError(t, err)
	assert.Equal(t, "AVENGERS ENDGAME", got.Title)

	_, err = svc.Movie(99)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	all := svc.Movies()
	require.Len(t, all, 2)
	assert.Equal(t, m1.ID, all[0].ID, "listing is ID ordered")
}

func TestTheatreServiceHierarchy(t *testing.T) {
	svc := NewTheatreService()

	theatre := svc.CreateTheatre("INORBIT CINEMA")
	screen, err := svc.CreateScreen(theatre.ID, "SCREEN 1")
	require.NoError(t, err)
	assert.Equal(t, theatre.ID, screen.TheatreID)

	_, err = svc.CreateScreen(99, "SCREEN X")
	assert.ErrorIs(t, err, ErrTheatreNotFound)

	seat, err := svc.CreateSeat(screen.ID, 1, model.SeatCategoryGold)
	require.NoError(t, err)
	assert.Equal(t, screen.ID, seat.ScreenID)

	_, err = svc.CreateSeat(99, 1, model.SeatCategoryGold)
	assert.ErrorIs(t, err, ErrScreenNotFound)

	screens, err := svc.ScreensByTheatre(theatre.ID)
	require.NoError(t, err)
	require.Len(t, screens, 1)

	_, err = svc.ScreensByTheatre(99)
	assert.ErrorIs(t, err, ErrTheatreNotFound)

	seats, err := svc.SeatsByScreen(screen.ID)
	require.NoError(t, err)
	require.Len(t, seats, 1)

	_, err = svc.SeatsByScreen(99)
	assert.ErrorIs(t, err, ErrScreenNotFound)
}

func TestSeatsByScreenReturnsCopy(t *testing.T) {
	svc := NewTheatreService()
	theatre := svc.CreateTheatre("PVR CINEMA")
	screen, err := svc.CreateScreen(theatre.ID, "SCREEN 1")
	require.NoError(t, err)
	_, err = svc.CreateSeat(screen.ID, 1, model.SeatCategorySilver)
	require.NoError(t, err)

	seats, err := svc.SeatsByScreen(screen.ID)
	require.NoError(t, err)
	seats[0] = nil

	again, err := svc.SeatsByScreen(screen.ID)
	require.NoError(t, err)
	require.NotNil(t, again[0])
}

func TestShowService(t *testing.T) {
	movies := NewMovieService()
	theatres := NewTheatreService()
	shows := NewShowService()

	movie := movies.CreateMovie("AVENGERS ENDGAME", 181)
	theatre := theatres.CreateTheatre("INORBIT CINEMA")
	screen, err := theatres.CreateScreen(theatre.ID, "SCREEN 1")
	require.NoError(t, err)

	startsAt := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	sh := shows.CreateShow(movie, screen, startsAt)
	assert.Equal(t, movie.ID, sh.MovieID)
	assert.Equal(t, screen.ID, sh.ScreenID)
	assert.Equal(t, startsAt.Add(181*time.Minute), sh.EndsAt, "end time derives from the movie duration")

	got, err := shows.Show(sh.ID)
	require.NoError(t, err)
	assert.Equal(t, sh.ID, got.ID)

	_, err = shows.Show(99)
	assert.ErrorIs(t, err, ErrShowNotFound)

	other := movies.CreateMovie("BAAHUBALI", 167)
	shows.CreateShow(other, screen, startsAt.Add(4*time.Hour))

	assert.Len(t, shows.Shows(), 2)
	byMovie := shows.ShowsByMovie(movie.ID)
	require.Len(t, byMovie, 1)
	assert.Equal(t, sh.ID, byMovie[0].ID)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/booking"
	"github.com/iliyamo/movie-ticket-booking/internal/catalog"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// CatalogHandler groups the registries needed to manage and browse
// the movie/theatre/show inventory.  Owner endpoints mutate the
// registries; public endpoints expose sanitized views of them plus
// the live seat availability of a show.
type CatalogHandler struct {
	Movies       *catalog.MovieService
	Theatres     *catalog.TheatreService
	Shows        *catalog.ShowService
	Availability *booking.AvailabilityService
}

// NewCatalogHandler constructs a CatalogHandler.  All dependencies
// must be non-nil.
func NewCatalogHandler(movies *catalog.MovieService, theatres *catalog.TheatreService, shows *catalog.ShowService, availability *booking.AvailabilityService) *CatalogHandler {
	if movies == nil || theatres == nil || shows == nil || availability == nil {
		panic("nil service passed to NewCatalogHandler")
	}
	return &CatalogHandler{Movies: movies, Theatres: theatres, Shows: shows, Availability: availability}
}

// ----- response shapes -----

type movieResp struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	DurationMinutes uint32 `json:"duration_minutes"`
}

type theatreResp struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type screenResp struct {
	ID        uint64 `json:"id"`
	TheatreID uint64 `json:"theatre_id"`
	Name      string `json:"name"`
}

type seatResp struct {
	ID        uint64 `json:"id"`
	RowNumber uint32 `json:"row"`
	Category  string `json:"category"`
}

type showResp struct {
	ID       uint64    `json:"id"`
	MovieID  uint64    `json:"movie_id"`
	ScreenID uint64    `json:"screen_id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func toShowResp(sh *model.Show) showResp {
	return showResp{ID: sh.ID, MovieID: sh.MovieID, ScreenID: sh.ScreenID, StartsAt: sh.StartsAt, EndsAt: sh.EndsAt}
}

// ----- owner endpoints -----

// CreateMovie handles POST /v1/movies.
func (h *CatalogHandler) CreateMovie(c echo.Context) error {
	var body struct {
		Title           string `json:"title"`
		DurationMinutes uint32 `json:"duration_minutes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" || body.DurationMinutes == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and duration_minutes are required"})
	}
	m := h.Movies.CreateMovie(body.Title, body.DurationMinutes)
	return c.JSON(http.StatusCreated, movieResp{ID: m.ID, Title: m.Title, DurationMinutes: m.DurationMinutes})
}

// CreateTheatre handles POST /v1/theatres.
func (h *CatalogHandler) CreateTheatre(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	t := h.Theatres.CreateTheatre(body.Name)
	return c.JSON(http.StatusCreated, theatreResp{ID: t.ID, Name: t.Name})
}

// CreateScreen handles POST /v1/theatres/:id/screens.
func (h *CatalogHandler) CreateScreen(c echo.Context) error {
	theatreID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theatre id"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	sc, err := h.Theatres.CreateScreen(theatreID, body.Name)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theatre not found"})
	}
	return c.JSON(http.StatusCreated, screenResp{ID: sc.ID, TheatreID: sc.TheatreID, Name: sc.Name})
}

// CreateSeats handles POST /v1/screens/:id/seats.  It registers a
// batch of seats laid out in rows of the given width.
func (h *CatalogHandler) CreateSeats(c echo.Context) error {
	screenID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid screen id"})
	}
	var body struct {
		Count    uint32 `json:"count"`
		RowWidth uint32 `json:"row_width"`
		Category string `json:"category"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Count == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "count is required"})
	}
	if body.RowWidth == 0 {
		body.RowWidth = 10
	}
	category := model.SeatCategory(strings.ToUpper(strings.TrimSpace(body.Category)))
	switch category {
	case model.SeatCategorySilver, model.SeatCategoryGold, model.SeatCategoryPlatinum:
	case "":
		category = model.SeatCategoryGold
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat category"})
	}

	created := make([]seatResp, 0, body.Count)
	for i := uint32(0); i < body.Count; i++ {
		seat, err := h.Theatres.CreateSeat(screenID, i/body.RowWidth+1, category)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "screen not found"})
		}
		created = append(created, seatResp{ID: seat.ID, RowNumber: seat.RowNumber, Category: string(seat.Category)})
	}
	return c.JSON(http.StatusCreated, echo.Map{"seats": created})
}

// CreateShow handles POST /v1/shows and schedules a screening.
func (h *CatalogHandler) CreateShow(c echo.Context) error {
	var body struct {
		MovieID  uint64 `json:"movie_id"`
		ScreenID uint64 `json:"screen_id"`
		StartsAt string `json:"starts_at"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MovieID == 0 || body.ScreenID == 0 || strings.TrimSpace(body.StartsAt) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id, screen_id and starts_at are required"})
	}
	startsAt, err := time.Parse(time.RFC3339, strings.TrimSpace(body.StartsAt))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid starts_at format"})
	}
	m, err := h.Movies.Movie(body.MovieID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	sc, err := h.Theatres.Screen(body.ScreenID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "screen not found"})
	}
	sh := h.Shows.CreateShow(m, sc, startsAt)
	return c.JSON(http.StatusCreated, toShowResp(sh))
}

// ----- public endpoints -----

// GetMovies handles GET /v1/movies.
func (h *CatalogHandler) GetMovies(c echo.Context) error {
	movies := h.Movies.Movies()
	out := make([]movieResp, 0, len(movies))
	for _, m := range movies {
		out = append(out, movieResp{ID: m.ID, Title: m.Title, DurationMinutes: m.DurationMinutes})
	}
	return c.JSON(http.StatusOK, out)
}

// GetTheatres handles GET /v1/theatres.
func (h *CatalogHandler) GetTheatres(c echo.Context) error {
	theatres := h.Theatres.Theatres()
	out := make([]theatreResp, 0, len(theatres))
	for _, t := range theatres {
		out = append(out, theatreResp{ID: t.ID, Name: t.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// GetScreensByTheatre handles GET /v1/theatres/:id/screens.
func (h *CatalogHandler) GetScreensByTheatre(c echo.Context) error {
	theatreID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theatre id"})
	}
	screens, err := h.Theatres.ScreensByTheatre(theatreID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theatre not found"})
	}
	out := make([]screenResp, 0, len(screens))
	for _, sc := range screens {
		out = append(out, screenResp{ID: sc.ID, TheatreID: sc.TheatreID, Name: sc.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// GetShowsByMovie handles GET /v1/movies/:id/shows.
func (h *CatalogHandler) GetShowsByMovie(c echo.Context) error {
	movieID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if _, err := h.Movies.Movie(movieID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	shows := h.Shows.ShowsByMovie(movieID)
	out := make([]showResp, 0, len(shows))
	for _, sh := range shows {
		out = append(out, toShowResp(sh))
	}
	return c.JSON(http.StatusOK, out)
}

// GetShow handles GET /v1/shows/:id.
func (h *CatalogHandler) GetShow(c echo.Context) error {
	showID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	sh, err := h.Shows.Show(showID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	return c.JSON(http.StatusOK, toShowResp(sh))
}

// GetAvailableSeats handles GET /v1/shows/:id/seats.  The answer is a
// point-in-time snapshot; the authoritative availability check happens
// atomically when the booking is created.
func (h *CatalogHandler) GetAvailableSeats(c echo.Context) error {
	showID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	sh, err := h.Shows.Show(showID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	available, err := h.Availability.AvailableSeats(sh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{"show_id": sh.ID, "available_seat_ids": available})
}

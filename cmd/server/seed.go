package main

import (
	"log"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/catalog"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/user"
)

// seedDemoData loads a small sample catalog so the API is usable out
// of the box: two movies, two theatres with one screen of ten seats
// each, a show per screen starting in an hour, and an owner plus a
// customer account (password "password" for both).
func seedDemoData(users *user.Store, movies *catalog.MovieService, theatres *catalog.TheatreService, shows *catalog.ShowService, bcryptCost int) {
	avengers := movies.CreateMovie("AVENGERS ENDGAME", 181)
	baahubali := movies.CreateMovie("BAAHUBALI", 167)

	inorbit := theatres.CreateTheatre("INORBIT CINEMA")
	pvr := theatres.CreateTheatre("PVR CINEMA")

	startsAt := time.Now().UTC().Add(time.Hour).Truncate(time.Minute)
	for _, t := range []*model.Theatre{inorbit, pvr} {
		screen, err := theatres.CreateScreen(t.ID, "SCREEN 1")
		if err != nil {
			log.Printf("seed: create screen: %v", err)
			continue
		}
		for i := 0; i < 10; i++ {
			category := model.SeatCategorySilver
			switch {
			case i >= 8:
				category = model.SeatCategoryPlatinum
			case i >= 5:
				category = model.SeatCategoryGold
			}
			if _, err := theatres.CreateSeat(screen.ID, uint32(i/5+1), category); err != nil {
				log.Printf("seed: create seat: %v", err)
			}
		}
		shows.CreateShow(avengers, screen, startsAt)
		shows.CreateShow(baahubali, screen, startsAt.Add(4*time.Hour))
	}

	for _, acct := range []struct{ name, email, role string }{
		{"Demo Owner", "owner@example.com", "OWNER"},
		{"Demo Customer", "customer@example.com", "CUSTOMER"},
	} {
		if _, err := users.Create(acct.name, acct.email, "password", acct.role, bcryptCost); err != nil {
			log.Printf("seed: create user %s: %v", acct.email, err)
		}
	}

	log.Printf("seeded demo data: %d movies, %d theatres, %d shows", len(movies.Movies()), len(theatres.Theatres()), len(shows.Shows()))
}

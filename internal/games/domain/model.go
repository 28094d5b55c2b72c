package domain

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidGame  = errors.New("invalid game")
)

// Cafe is one of the chain's locations. Listings are grouped by café in
// the catalog view, and the enumeration doubles as the value set offered
// by the authoring form.
type Cafe string

const (
	CafeVestergade  Cafe = "Vestergade"
	CafeFredensgade Cafe = "Fredensgade"
	CafeAalborg     Cafe = "Aalborg"
	CafeKolding     Cafe = "Kolding"
)

// Cafes lists the locations in the fixed order the catalog renders them.
func Cafes() []Cafe {
	return []Cafe{CafeVestergade, CafeFredensgade, CafeAalborg, CafeKolding}
}

// IsValidCafe reports whether s names a known location.
func IsValidCafe(s string) bool {
	for _, c := range Cafes() {
		if s == string(c) {
			return true
		}
	}
	return false
}

// Game is a single board game listing. LikedBy holds the emails of users
// who favorited the game; Firestore's array-union/array-remove keeps it
// duplicate-free without any local bookkeeping.
type Game struct {
	ID       string   `json:"id" firestore:"-"`
	Name     string   `json:"name" firestore:"name"`
	Cafe     string   `json:"cafe" firestore:"cafe"`
	Location string   `json:"location" firestore:"location"`
	Category string   `json:"category" firestore:"category"`
	Age      string   `json:"age" firestore:"age"`
	Players  string   `json:"players" firestore:"players"`
	Playtime string   `json:"playtime" firestore:"playtime"`
	ImgURL   string   `json:"imgurl" firestore:"imgurl"`
	LikedBy  []string `json:"likedBy" firestore:"likedBy"`
}

// LikedByContains reports whether email has favorited the game.
func (g *Game) LikedByContains(email string) bool {
	for _, e := range g.LikedBy {
		if e == email {
			return true
		}
	}
	return false
}

// GroupByCafe buckets games by their café, keyed in the fixed Cafes()
// order. A game lands in exactly one bucket, determined solely by its
// Cafe field; games with an unrecognized café are dropped from every
// bucket, matching the catalog view which only renders known locations.
func GroupByCafe(games []*Game) map[Cafe][]*Game {
	grouped := make(map[Cafe][]*Game, len(Cafes()))
	for _, c := range Cafes() {
		grouped[c] = []*Game{}
	}
	for _, g := range games {
		c := Cafe(g.Cafe)
		if _, ok := grouped[c]; ok {
			grouped[c] = append(grouped[c], g)
		}
	}
	return grouped
}

// FilterLikedBy returns the games whose LikedBy contains email,
// preserving input order.
func FilterLikedBy(games []*Game, email string) []*Game {
	out := []*Game{}
	for _, g := range games {
		if g.LikedByContains(email) {
			out = append(out, g)
		}
	}
	return out
}

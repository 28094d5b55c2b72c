package http

import (
	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
	"github.com/braetspilscafeen/go-catalog-backend/internal/games/service"
)

// Handler bundles the dependencies for games HTTP endpoints.
type Handler struct {
	svc *service.GameService
}

func New(svc *service.GameService) *Handler {
	return &Handler{svc: svc}
}

// createReq mirrors the authoring form: every field is required at the
// input level, nothing more. Café enum membership is deliberately not
// validated server-side; an unknown café is stored and simply dropped
// from the grouped view.
type createReq struct {
	Name     string `json:"name" binding:"required"`
	Cafe     string `json:"cafe" binding:"required"`
	Location string `json:"location" binding:"required"`
	Category string `json:"category" binding:"required"`
	Age      string `json:"age" binding:"required"`
	Players  string `json:"players" binding:"required"`
	Playtime string `json:"playtime" binding:"required"`
	ImgURL   string `json:"imgurl" binding:"required"`
}

func (r *createReq) toGame() *domain.Game {
	return &domain.Game{
		Name:     r.Name,
		Cafe:     r.Cafe,
		Location: r.Location,
		Category: r.Category,
		Age:      r.Age,
		Players:  r.Players,
		Playtime: r.Playtime,
		ImgURL:   r.ImgURL,
		LikedBy:  []string{},
	}
}

// updateReq is the edit form's payload: only the fields present are
// merged into the stored document. The favorite set is owned by the
// toggle path and cannot be edited here.
type updateReq struct {
	Name     *string `json:"name"`
	Cafe     *string `json:"cafe"`
	Location *string `json:"location"`
	Category *string `json:"category"`
	Age      *string `json:"age"`
	Players  *string `json:"players"`
	Playtime *string `json:"playtime"`
	ImgURL   *string `json:"imgurl"`
}

func (r *updateReq) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	put := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	put("name", r.Name)
	put("cafe", r.Cafe)
	put("location", r.Location)
	put("category", r.Category)
	put("age", r.Age)
	put("players", r.Players)
	put("playtime", r.Playtime)
	put("imgurl", r.ImgURL)
	return fields
}

// cafeGroup keeps the grouped listing ordered; a JSON object keyed by
// café would not preserve the fixed rendering order.
type cafeGroup struct {
	Cafe  string         `json:"cafe"`
	Games []*domain.Game `json:"games"`
}

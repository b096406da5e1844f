package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/enriched", handler.ListEnrichedPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeamSlots)
	mux.HandleFunc("POST /v1/teams", handler.UpsertTeamSlot)
	mux.HandleFunc("POST /v1/teams/init", handler.InitTeamSlots)

	mux.HandleFunc("GET /v1/picks", handler.ListPicks)
	mux.HandleFunc("POST /v1/picks", handler.CreatePick)
	mux.HandleFunc("DELETE /v1/picks/{pickID}", handler.DeletePick)

	mux.HandleFunc("GET /v1/suggestions", handler.GetSuggestions)

	mux.HandleFunc("PUT /v1/players/{playerID}/tier", handler.SetTierOverride)
	mux.HandleFunc("DELETE /v1/players/{playerID}/tier", handler.ClearTierOverride)

	mux.HandleFunc("GET /v1/notes", handler.ListNotes)
	mux.HandleFunc("POST /v1/notes", handler.AddNote)

	mux.HandleFunc("GET /v1/meta/import-runs", handler.ListImportRuns)
}

func registerAdminImportRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/admin/import/players", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunCatalogImport)))
	mux.Handle("POST /v1/admin/import/rankings", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunRankingsImport)))
	mux.Handle("POST /v1/admin/import/adp", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunADPImport)))
	mux.Handle("POST /v1/admin/import/injuries", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunInjuryImport)))
	mux.Handle("POST /v1/admin/import/seed", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunSeedImport)))
	mux.Handle("POST /v1/admin/import/demo", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunDemoImport)))
	mux.Handle("POST /v1/admin/import/all", RequireAdminToken(adminToken, http.HandlerFunc(handler.RunFullRefresh)))
}

package internal

import (
	"net/http"

	"bevlog/internal/controllers"
	"bevlog/internal/providers"
	"bevlog/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/beverages", http.HandlerFunc(apiController.GetBeverages))
	routers.Post("/beverages", http.HandlerFunc(apiController.AddBeverage))
	routers.Delete("/beverage", http.HandlerFunc(apiController.RemoveBeverage))

	routers.Get("/logs", http.HandlerFunc(apiController.GetLogs))
	routers.Post("/logs", http.HandlerFunc(apiController.AddLog))
	routers.Delete("/log", http.HandlerFunc(apiController.RemoveLog))
	routers.Post("/logs/clear", http.HandlerFunc(apiController.ClearLogs))
	routers.Get("/logs/beverage", http.HandlerFunc(apiController.GetLogsForBeverage))

	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))

	routers.Get("/export", http.HandlerFunc(apiController.ExportData))
	routers.Post("/import", http.HandlerFunc(apiController.ImportData))
	routers.Get("/export.csv", http.HandlerFunc(apiController.ExportCSV))

	routers.Get("/i18n", http.HandlerFunc(apiController.GetStrings))
	return routers
}

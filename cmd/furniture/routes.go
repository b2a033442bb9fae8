package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	calculate_material "furniture-golang/http-server/calculate-material"
	deletecatalog "furniture-golang/http-server/catalog/delete"
	getcatalog "furniture-golang/http-server/catalog/get"
	savecatalog "furniture-golang/http-server/catalog/save"
	updatecatalog "furniture-golang/http-server/catalog/update"
	generate_excel "furniture-golang/http-server/generate-report/generate-excel"
	deleteproducts "furniture-golang/http-server/products/delete"
	getproducts "furniture-golang/http-server/products/get"
	saveproducts "furniture-golang/http-server/products/save"
	updateproducts "furniture-golang/http-server/products/update"
	deleterouting "furniture-golang/http-server/routing/delete"
	getrouting "furniture-golang/http-server/routing/get"
	saverouting "furniture-golang/http-server/routing/save"
	updaterouting "furniture-golang/http-server/routing/update"
	metricsmw "furniture-golang/internal/middleware/metrics"
	"furniture-golang/internal/service/manufacturing"
	"furniture-golang/internal/service/report"
	"furniture-golang/internal/storage/mysql"
)

func routes(log *slog.Logger, storage *mysql.Storage, calc *manufacturing.Service, gen *report.ReportService) *chi.Mux {
	router := chi.NewRouter()

	// API открытый, фронтенд может жить где угодно
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metricsmw.Collect)

	// Расчет сырья
	router.Post("/api/material/calculate-raw-material", calculate_material.CalculateRawMaterial(log, calc))

	// Продукция (списки и карточка приходят со временем изготовления)
	router.Get("/api/products", getproducts.GetProducts(log, storage, calc))
	router.Get("/api/products/{id}", getproducts.GetProductByID(log, storage, calc))
	router.Get("/api/products/{id}/workshops", getproducts.GetProductWorkshops(log, storage))
	router.Post("/api/products", saveproducts.SaveProduct(log, storage))
	router.Put("/api/products/{id}", updateproducts.UpdateProduct(log, storage))
	router.Delete("/api/products/{id}", deleteproducts.DeleteProduct(log, storage))

	// Типы продукции
	router.Get("/api/product-types", getcatalog.GetProductTypes(log, storage))
	router.Get("/api/product-types/{id}", getcatalog.GetProductTypeByID(log, storage))
	router.Post("/api/product-types", savecatalog.SaveProductType(log, storage))
	router.Put("/api/product-types/{id}", updatecatalog.UpdateProductType(log, storage))
	router.Delete("/api/product-types/{id}", deletecatalog.DeleteProductType(log, storage))

	// Типы материалов
	router.Get("/api/material-types", getcatalog.GetMaterialTypes(log, storage))
	router.Get("/api/material-types/{id}", getcatalog.GetMaterialTypeByID(log, storage))
	router.Post("/api/material-types", savecatalog.SaveMaterialType(log, storage))
	router.Put("/api/material-types/{id}", updatecatalog.UpdateMaterialType(log, storage))
	router.Delete("/api/material-types/{id}", deletecatalog.DeleteMaterialType(log, storage))

	// Цеха
	router.Get("/api/workshops", getcatalog.GetWorkshops(log, storage))
	router.Get("/api/workshops/{id}", getcatalog.GetWorkshopByID(log, storage))
	router.Get("/api/workshops/product/{id}", getrouting.GetWorkshopsForProduct(log, storage))
	router.Post("/api/workshops", savecatalog.SaveWorkshop(log, storage))
	router.Put("/api/workshops/{id}", updatecatalog.UpdateWorkshop(log, storage))
	router.Delete("/api/workshops/{id}", deletecatalog.DeleteWorkshop(log, storage))

	// Производственные маршруты
	router.Get("/api/product-workshops", getrouting.GetProductWorkshops(log, storage))
	router.Post("/api/product-workshops", saverouting.SaveProductWorkshop(log, storage))
	router.Put("/api/product-workshops/{id}", updaterouting.UpdateProductWorkshop(log, storage))
	router.Delete("/api/product-workshops/{id}", deleterouting.DeleteProductWorkshop(log, storage))

	// Отчет по каталогу продукции
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, gen))

	router.Handle("/metrics", promhttp.Handler())

	return router
}

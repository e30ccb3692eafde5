package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	parkinglotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglot"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

// Демо-данные парковок для локальной разработки и тестирования API
var demoLots = []domain.ParkingLot{
	{Name: "Центральная парковка", Location: "ул. Тверская, 12", Capacity: 50, AvailableSpots: 50, PricePerHour: 150},
	{Name: "Парковка у вокзала", Location: "Комсомольская пл., 2", Capacity: 120, AvailableSpots: 120, PricePerHour: 100},
	{Name: "Парковка ТЦ Горизонт", Location: "пр. Мира, 211", Capacity: 300, AvailableSpots: 300, PricePerHour: 80},
	{Name: "Парковка аэропорта", Location: "Шереметьево, терминал B", Capacity: 500, AvailableSpots: 500, PricePerHour: 250},
	{Name: "Мини-парковка", Location: "ул. Арбат, 4", Capacity: 2, AvailableSpots: 2, PricePerHour: 200},
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Чистим таблицы перед заливкой (bookings первыми из-за FK)
	for _, table := range []string{"bookings", "parking_lots"} {
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE"); err != nil {
			log.Fatal("Failed to truncate %s: %v", table, err)
		}
	}
	log.Info("Tables truncated")

	repo := parkinglotRepo.NewRepository(db)
	for i := range demoLots {
		created, err := repo.Create(ctx, &demoLots[i])
		if err != nil {
			log.Fatal("Failed to create parking lot %q: %v", demoLots[i].Name, err)
		}
		log.Info("Created parking lot: id=%d, name=%q, capacity=%d", created.ID, created.Name, created.Capacity)
	}

	log.Info("Seeding completed: %d parking lots", len(demoLots))
}

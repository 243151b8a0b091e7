package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lionreport/internal/config"
	"lionreport/internal/db"
	"lionreport/internal/model"
	"lionreport/internal/repository"
	"lionreport/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load(*configFile)

	gormDB, err := db.NewMySQL(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Company{},
		&model.Team{},
		&model.User{},
		&model.DailyLog{},
		&model.LIONEntry{},
		&model.Report{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	teamRepo := repository.NewTeamRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	logService := service.NewLogService(repository.NewDailyLogRepository(gormDB))

	company := &model.Company{Name: "Acme Corp"}
	if err := teamRepo.CreateCompany(ctx, company); err != nil {
		log.Fatalf("Failed to create company: %v", err)
	}

	team := &model.Team{
		CompanyID:    company.ID,
		Name:         "Platform",
		ManagerEmail: "manager@acme.example",
	}
	if err := teamRepo.CreateTeam(ctx, team); err != nil {
		log.Fatalf("Failed to create team: %v", err)
	}

	seedUsers := []struct {
		username, email, managerEmail, password string
	}{
		{"alice", "alice@acme.example", "mgr.alice@acme.example", "password123"},
		{"bob", "bob@acme.example", "", "password123"},
	}

	start, _ := service.PreviousWorkWeek(time.Now())
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user := &model.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
			ManagerEmail: su.managerEmail,
			TeamID:       &team.ID,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.username, err)
		}

		// One log per day of the previous work week.
		for day := 0; day < 5; day++ {
			date := start.AddDate(0, 0, day)
			_, err := logService.Submit(ctx, user.ID, date, service.LogFields{
				Achievements:  fmt.Sprintf("Shipped task %d", day+1),
				Issues:        "None",
				Opportunities: "Automate the deploy checklist",
				NextDayTasks:  fmt.Sprintf("Start task %d", day+2),
			})
			if err != nil {
				log.Fatalf("Failed to seed log for %s on %s: %v", su.username, date.Format("2006-01-02"), err)
			}
		}
		log.Printf("Seeded user %s with 5 daily logs", su.username)
	}

	log.Printf("Seed completed at %s", time.Now().Format(time.RFC3339))
}

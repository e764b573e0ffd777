package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/config"
	"quemjoga-backend/internal/database"
	"quemjoga-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Demo structures that mirror the YAML files under scripts/data
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone,omitempty"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type MemberData struct {
	Name         string `yaml:"name"`
	Nickname     string `yaml:"nickname,omitempty"`
	UserEmail    string `yaml:"user_email,omitempty"`
	Phone        string `yaml:"phone,omitempty"`
	Position     string `yaml:"position"`
	JerseyNumber *int   `yaml:"jersey_number,omitempty"`
	IsAdmin      bool   `yaml:"is_admin"`
}

type MatchData struct {
	DaysFromNow int    `yaml:"days_from_now"`
	Hour        int    `yaml:"hour"`
	Venue       string `yaml:"venue"`
	Address     string `yaml:"address"`
	FieldCost   int64  `yaml:"field_cost"`
	Notes       string `yaml:"notes,omitempty"`
}

type GroupData struct {
	Name           string       `yaml:"name"`
	Type           string       `yaml:"type"`
	Description    string       `yaml:"description"`
	Rules          string       `yaml:"rules"`
	DuesAmount     int64        `yaml:"dues_amount"`
	YellowCardFine int64        `yaml:"yellow_card_fine"`
	RedCardFine    int64        `yaml:"red_card_fine"`
	OwnerEmail     string       `yaml:"owner_email"`
	Members        []MemberData `yaml:"members"`
	Matches        []MatchData  `yaml:"matches"`
}

type DemoFile struct {
	Users  []UserData  `yaml:"users"`
	Groups []GroupData `yaml:"groups"`
}

func main() {
	log.Println("Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres may still be starting when run from docker compose
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dir := "scripts/data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	demo, err := loadDemoFiles(dir)
	if err != nil {
		log.Fatalf("Failed to read demo data: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return seed(tx, demo)
	}); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("Demo data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: logger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDemoFiles merges every .yaml/.yml file found under dir
func loadDemoFiles(dir string) (*DemoFile, error) {
	merged := &DemoFile{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var file DemoFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		merged.Users = append(merged.Users, file.Users...)
		merged.Groups = append(merged.Groups, file.Groups...)
		return nil
	})
	return merged, err
}

func seed(tx *gorm.DB, demo *DemoFile) error {
	hasher := auth.NewPasswordHasher()

	users := make(map[string]*models.User)
	created := 0
	for _, data := range demo.Users {
		user, isNew, err := createUser(tx, hasher, data)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.Email, err)
		}
		users[strings.ToLower(data.Email)] = user
		if isNew {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(demo.Users))

	for _, data := range demo.Groups {
		isNew, err := createGroup(tx, data, users)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", data.Name, err)
		}
		if !isNew {
			log.Printf("Group %s already exists, skipping", data.Name)
			continue
		}
		log.Printf("Group %s: %d members, %d matches", data.Name, len(data.Members), len(data.Matches))
	}
	return nil
}

func createUser(tx *gorm.DB, hasher *auth.PasswordHasher, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var user models.User
	err := tx.Where("lower(email) = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := hasher.Hash(data.Password)
	if err != nil {
		return nil, false, err
	}
	role := models.UserRole(data.Role)
	if role != models.UserRoleAdmin {
		role = models.UserRolePlayer
	}
	user = models.User{
		Name:         data.Name,
		Email:        &email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if data.Phone != "" {
		phone := data.Phone
		user.Phone = &phone
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createGroup(tx *gorm.DB, data GroupData, users map[string]*models.User) (bool, error) {
	var existing models.Group
	err := tx.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query group: %w", err)
	}

	owner, ok := users[strings.ToLower(data.OwnerEmail)]
	if !ok {
		return false, fmt.Errorf("owner %s is not declared in users", data.OwnerEmail)
	}

	groupType := models.GroupType(data.Type)
	if !groupType.IsValid() {
		groupType = models.GroupTypeSociety
	}
	group := models.Group{
		Name:           data.Name,
		Type:           groupType,
		Description:    data.Description,
		Rules:          data.Rules,
		MaxMembers:     groupType.MaxMembers(),
		DuesAmount:     data.DuesAmount,
		YellowCardFine: data.YellowCardFine,
		RedCardFine:    data.RedCardFine,
		IsActive:       true,
	}
	if err := tx.Create(&group).Error; err != nil {
		return false, err
	}

	admin := models.GroupAdmin{GroupID: group.ID, UserID: owner.ID, IsOwner: true, IsActive: true}
	if err := tx.Create(&admin).Error; err != nil {
		return false, fmt.Errorf("failed to create owner: %w", err)
	}

	members := make([]models.Member, 0, len(data.Members))
	for _, m := range data.Members {
		position := models.Position(m.Position)
		if !position.IsValid() {
			position = models.PositionMidfielder
		}
		member := models.Member{
			GroupID:      group.ID,
			Name:         m.Name,
			Nickname:     m.Nickname,
			Phone:        m.Phone,
			Position:     position,
			JerseyNumber: m.JerseyNumber,
			IsAdmin:      m.IsAdmin,
			IsActive:     true,
		}
		if m.UserEmail != "" {
			user, ok := users[strings.ToLower(m.UserEmail)]
			if !ok {
				log.Printf("Warning: user %s not found for member %s", m.UserEmail, m.Name)
			} else {
				id := user.ID
				member.UserID = &id
			}
		}
		if err := tx.Create(&member).Error; err != nil {
			return false, fmt.Errorf("failed to create member %s: %w", m.Name, err)
		}
		members = append(members, member)
	}

	stats := make([]models.MemberStat, 0, len(members))
	for _, member := range members {
		stats = append(stats, models.MemberStat{MemberID: member.ID, GroupID: group.ID})
	}
	if len(stats) > 0 {
		if err := tx.Create(&stats).Error; err != nil {
			return false, fmt.Errorf("failed to create member stats: %w", err)
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	for _, m := range data.Matches {
		match := models.Match{
			GroupID:     group.ID,
			ScheduledAt: today.AddDate(0, 0, m.DaysFromNow).Add(time.Duration(m.Hour) * time.Hour),
			Venue:       m.Venue,
			Address:     m.Address,
			FieldCost:   m.FieldCost,
			Notes:       m.Notes,
		}
		if err := tx.Create(&match).Error; err != nil {
			return false, fmt.Errorf("failed to create match: %w", err)
		}

		attendances := make([]models.Attendance, 0, len(members))
		for _, member := range members {
			attendances = append(attendances, models.Attendance{
				MatchID:  match.ID,
				MemberID: member.ID,
				Status:   models.AttendanceStatusPending,
			})
		}
		if len(attendances) > 0 {
			if err := tx.Create(&attendances).Error; err != nil {
				return false, fmt.Errorf("failed to create attendance: %w", err)
			}
		}
	}
	return true, nil
}

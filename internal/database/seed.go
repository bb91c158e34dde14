package database

import (
	"fmt"
	"time"

	"inventory-portal/internal/hash"
	"inventory-portal/internal/logger"
	"inventory-portal/internal/models"
)

type seedUser struct {
	Username   string
	Email      string
	Password   string
	Role       models.Role
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
}

// The reference dataset. Passwords are deliberately non-guessable so the
// only way into a seeded account is the reset-flow exercise itself.
var seedUsers = []seedUser{
	{"admin", "admin@techcorp.local", "K9$mX#vB2pQ7@nL4R!eH3zF8wC6uI5yT", models.RoleAdmin,
		"Robert", "Anderson", "+33 6 85 42 91 73", "42 Avenue des Champs-Élysées", "Paris", "75008", "France"},
	{"jennifer.morgan", "j.morgan@techcorp.local", "P3$kM9@nV5zL7!qR2hB4xF8tE1wQ6uY", models.RoleManager,
		"Jennifer", "Morgan", "+33 6 74 58 32 19", "15 Rue de la République", "Lyon", "69002", "France"},
	{"david.chen", "d.chen@techcorp.local", "Z8#lN4@vR9zP5!mK7qX2hB6tF3wL1uE", models.RoleEmployee,
		"David", "Chen", "+33 6 92 67 15 84", "8 Boulevard Saint-Germain", "Paris", "75005", "France"},
	{"sarah.wilson", "s.wilson@techcorp.local", "Q5@mX8#pL3zN7!vR4hK9tB2wF6uE1qY", models.RoleHR,
		"Sarah", "Wilson", "+33 6 31 78 45 92", "23 Rue Victor Hugo", "Marseille", "13001", "France"},
	{"michael.torres", "m.torres@techcorp.local", "R7!pK4@nL9zX2#mV6hQ5tB8wF3uE1yL", models.RoleEmployee,
		"Michael", "Torres", "+33 6 56 89 23 47", "67 Avenue de la Liberté", "Toulouse", "31000", "France"},
	{"lisa.parker", "l.parker@techcorp.local", "L6#vB3@pK8zN4!mR7hX2tQ9wF5uE1yP", models.RoleSupervisor,
		"Lisa", "Parker", "+33 6 49 82 36 15", "11 Place de la Bastille", "Paris", "75011", "France"},
}

var seedItems = []models.InventoryItem{
	{Name: "Laptops HP EliteBook 840", Category: "Electronics", Quantity: 25, Price: 899.99, Supplier: "HP Enterprise"},
	{Name: "Office Chairs Ergonomic", Category: "Furniture", Quantity: 15, Price: 299.99, Supplier: "Steelcase Inc"},
	{Name: "Network Switches Cisco", Category: "Electronics", Quantity: 8, Price: 1299.99, Supplier: "Cisco Systems"},
	{Name: "Wireless Mice Logitech", Category: "Electronics", Quantity: 50, Price: 29.99, Supplier: "Logitech Corp"},
	{Name: "Conference Tables Oak", Category: "Furniture", Quantity: 5, Price: 799.99, Supplier: "Herman Miller"},
	{Name: "Security Cameras 4K", Category: "Security", Quantity: 12, Price: 199.99, Supplier: "Hikvision"},
	{Name: "Monitors Dell UltraSharp", Category: "Electronics", Quantity: 30, Price: 449.99, Supplier: "Dell Technologies"},
	{Name: "Standing Desks Electric", Category: "Furniture", Quantity: 10, Price: 699.99, Supplier: "Flexispot"},
	{Name: "Keyboards Mechanical", Category: "Electronics", Quantity: 40, Price: 129.99, Supplier: "Corsair Gaming"},
	{Name: "Webcams Logitech 4K", Category: "Electronics", Quantity: 20, Price: 159.99, Supplier: "Logitech Corp"},
}

// Seed populates an empty database with the reference users and
// inventory. Hashes are computed with the active hasher so both
// training-fidelity and hardened deployments boot with working logins.
func Seed(hasher hash.Hasher) error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check users table: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range seedUsers {
		h, err := hasher.Hash(s.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", s.Username, err)
		}
		user := models.User{
			Username:     s.Username,
			Email:        s.Email,
			PasswordHash: h,
			Role:         s.Role,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			Phone:        s.Phone,
			Address:      s.Address,
			City:         s.City,
			PostalCode:   s.PostalCode,
			Country:      s.Country,
		}
		if err := DB.Create(&user).Error; err != nil {
			return fmt.Errorf("create seed user %s: %w", s.Username, err)
		}
		logger.Infof("created seed user %s (role=%s)", s.Username, s.Role)
	}

	now := time.Now()
	for i := range seedItems {
		item := seedItems[i]
		item.LastUpdated = now
		if err := DB.Create(&item).Error; err != nil {
			return fmt.Errorf("create seed item %q: %w", item.Name, err)
		}
	}
	logger.Infof("seeded %d users and %d inventory items", len(seedUsers), len(seedItems))

	return nil
}

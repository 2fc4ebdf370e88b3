package main

import (
	"log"

	"github.com/joho/godotenv"

	"enhancives/internal/config"
	"enhancives/internal/domain"
	"enhancives/internal/repository"
	"enhancives/internal/util"
)

const (
	demoUsername = "demo"
	demoPassword = "demo123"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	store, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	defer store.Close()

	log.Println("Starting seed process...")

	if err := seedDemoUser(store); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if err := seedDemoItems(store); err != nil {
		log.Fatalf("Failed to seed demo items: %v", err)
	}

	log.Println("Seed process completed!")
}

func seedDemoUser(store repository.Store) error {
	if _, err := store.Users().FindByUsername(demoUsername); err == nil {
		log.Printf("User %q already exists, skipping", demoUsername)
		return nil
	}

	hash, err := util.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	user := &domain.User{Username: demoUsername, Password: hash}
	if err := store.Users().Create(user); err != nil {
		return err
	}

	log.Printf("Created user %q", demoUsername)
	return nil
}

func seedDemoItems(store repository.Store) error {
	existing, err := store.Items().FindByUsername(demoUsername)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("User %q already has %d items, skipping", demoUsername, len(existing))
		return nil
	}

	items := []*domain.Item{
		{
			Username:   demoUsername,
			Name:       "gold-set mithril ring",
			Location:   "Finger",
			Permanence: domain.PermanencePersists,
			Targets: domain.TargetList{
				{Target: "Strength", Type: domain.BoostBonus, Amount: 5},
				{Target: "Max Health", Type: domain.BoostMax, Amount: 15},
			},
		},
		{
			Username:   demoUsername,
			Name:       "glowing amber amulet",
			Location:   "Neck",
			Permanence: domain.PermanencePersists,
			Targets: domain.TargetList{
				{Target: "Aura", Type: domain.BoostBase, Amount: 4},
				{Target: "Max Mana", Type: domain.BoostMax, Amount: 20},
			},
		},
		{
			Username:   demoUsername,
			Name:       "supple climbing gloves",
			Location:   "Hands",
			Permanence: domain.PermanenceCrumbly,
			Targets: domain.TargetList{
				{Target: "Climbing", Type: domain.BoostRanks, Amount: 7},
			},
		},
		{
			Username:   demoUsername,
			Name:       "etched vaalin band",
			Location:   "Finger",
			Permanence: domain.PermanencePersists,
			Targets: domain.TargetList{
				{Target: "Wisdom", Type: domain.BoostBonus, Amount: 3},
				{Target: "Spirit Recovery", Type: domain.BoostRegen, Amount: 1},
			},
		},
	}

	index := domain.NewEquipmentIndex()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if err := store.Items().Create(item); err != nil {
			return err
		}
		log.Printf("Created item %q", item.Name)
	}

	// Equip the first ring and the amulet so totals show up out of the box.
	if err := index.Equip(items[0].ID, "Finger", 0); err != nil {
		return err
	}
	if err := index.Equip(items[1].ID, "Neck", 0); err != nil {
		return err
	}
	if err := store.Equipment().Save(demoUsername, index); err != nil {
		return err
	}

	log.Println("Equipped starter items")
	return nil
}

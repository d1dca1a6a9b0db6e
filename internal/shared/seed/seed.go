// Package seed loads the store's reference data into Firestore: categories,
// serviceable areas, payment offers, and an admin account. Meant for fresh
// environments; existing docs are left alone.
package seed

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-giftstore-api/internal/area"
	"go-giftstore-api/internal/category"
	"go-giftstore-api/internal/offer"
)

// Run seeds every collection. Individual seeders skip rows that already
// exist, so Run is safe to call more than once.
func Run(ctx context.Context, client *firestore.Client, logger *zap.Logger) error {
	if err := Categories(ctx, category.NewRepository(client)); err != nil {
		return err
	}
	if err := Areas(ctx, area.NewRepository(client)); err != nil {
		return err
	}
	if err := Offers(ctx, offer.NewRepository(client)); err != nil {
		return err
	}
	logger.Info("seed complete")
	return nil
}

func Categories(ctx context.Context, repo category.Repository) error {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []category.Category{
		{Name: "Baby Shower", Slug: "baby-shower", Description: "Beautiful hampers and gifts for celebrating new arrivals"},
		{Name: "Weddings & Celebrations", Slug: "wedding", Description: "Elegant wedding favors and celebration gifts"},
		{Name: "Corporate Gifting", Slug: "corporate", Description: "Professional gifts for clients and employees"},
		{Name: "Housewarming", Slug: "housewarming", Description: "Perfect gifts for new home celebrations"},
		{Name: "Naming Ceremonies", Slug: "naming-ceremony", Description: "Traditional gifts for naming ceremonies"},
		{Name: "Gift Hampers", Slug: "hamper", Description: "Curated hampers and bulk orders"},
	}

	now := time.Now()
	for i, c := range rows {
		c.ID = c.Slug
		c.Order = i
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func Areas(ctx context.Context, repo area.Repository) error {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []area.Area{
		{Name: "Colaba", Pincodes: []string{"400001", "400005"}, Zone: "South"},
		{Name: "Churchgate", Pincodes: []string{"400020"}, Zone: "South"},
		{Name: "Worli", Pincodes: []string{"400018", "400025", "400030"}, Zone: "South"},
		{Name: "Dadar", Pincodes: []string{"400014", "400028"}, Zone: "South"},
		{Name: "Bandra West", Pincodes: []string{"400050"}, Zone: "Western"},
		{Name: "Andheri West", Pincodes: []string{"400053", "400058"}, Zone: "Western"},
		{Name: "Andheri East", Pincodes: []string{"400059", "400069", "400093"}, Zone: "Western"},
		{Name: "Juhu", Pincodes: []string{"400049"}, Zone: "Western"},
		{Name: "Borivali West", Pincodes: []string{"400092"}, Zone: "Western"},
		{Name: "Chembur", Pincodes: []string{"400071", "400074", "400089"}, Zone: "Central"},
		{Name: "Powai", Pincodes: []string{"400076"}, Zone: "Central"},
		{Name: "Mulund West", Pincodes: []string{"400080"}, Zone: "Central"},
		{Name: "Vashi", Pincodes: []string{"400703", "400705"}, Zone: "Navi Mumbai"},
		{Name: "Nerul", Pincodes: []string{"400706"}, Zone: "Navi Mumbai"},
		{Name: "Thane West", Pincodes: []string{"400601", "400606", "400607"}, Zone: "Thane"},
	}

	now := time.Now()
	for _, a := range rows {
		a.ID = uuid.NewString()
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := repo.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func Offers(ctx context.Context, repo offer.Repository) error {
	existing, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	rows := []offer.Offer{
		{ID: "paytm", Provider: "Paytm", Logo: "💳", Description: "Get Cashback up to Rs.300 on a minimum transaction of Rs.799", Discount: "Up to ₹300", MinTransaction: 799},
		{ID: "amazon", Provider: "Amazon Pay", Logo: "🛒", Description: "Get up to Rs.200 cashback on Amazon Pay Balance orders (minimum order value Rs.1500)", Discount: "Up to ₹200", MinTransaction: 1500},
		{ID: "freecharge", Provider: "Freecharge", Logo: "⚡", Description: "Flat 15% off up to Rs.200 on a minimum transaction of Rs.999", Discount: "15% off", MinTransaction: 999},
		{ID: "mobikwik", Provider: "MobiKwik", Logo: "💰", Description: "Get up to Rs.300 cashback on transactions using MobiKwik UPI", Discount: "Up to ₹300"},
		{ID: "phonepe", Provider: "PhonePe", Logo: "📱", Description: "Get cashback up to Rs.250 on minimum order of Rs.1000", Discount: "Up to ₹250", MinTransaction: 1000},
	}

	now := time.Now()
	for _, o := range rows {
		o.CreatedAt = now
		o.UpdatedAt = now
		if err := repo.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

// Admin creates the admin-panel account (doc id = email). Skipped when the
// doc already exists so a reseed never resets a changed password.
func Admin(ctx context.Context, client *firestore.Client, email, password string) error {
	doc := client.Collection("admins").Doc(email)
	if _, err := doc.Get(ctx); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = doc.Set(ctx, map[string]any{
		"email":        email,
		"passwordHash": string(hash),
		"createdAt":    time.Now(),
	})
	return err
}

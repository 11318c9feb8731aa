package seeders

import (
	"context"
	"log"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/storage"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BuiltInUser is the hardcoded store owner used whenever no session identity
// exists. Purchases start empty so the simulated checkout is exercised.
func BuiltInUser() *models.User {
	return &models.User{
		ID:        "u1",
		Name:      "Alex Rivera",
		Email:     "alex@aashok.com",
		Avatar:    "https://picsum.photos/seed/alex/100/100",
		Role:      models.RoleOwner,
		Purchases: []string{},
	}
}

// Products returns the built-in default catalog used when no persisted
// override exists under the products key.
func Products() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Title:         "The SaaS Blueprint: Zero to $10k MRR",
			Description:   "A comprehensive guide to building, launching, and scaling your software business.",
			Price:         decimal.NewFromInt(49),
			OriginalPrice: decimal.NewFromInt(99),
			Category:      models.CategoryEbook,
			Rating:        4.8,
			ReviewsCount:  2,
			Image:         "https://picsum.photos/seed/saas/800/600",
			Features:      []string{"150+ Pages", "Checklists included", "Community Access", "Lifetime Updates"},
			LongDescription: "Master the art of SaaS. This eBook covers everything from ideation to marketing " +
				"and scaling. Perfect for solo founders and small teams.",
			FileSize:    "12MB PDF",
			DownloadURL: "/downloads/saas-blueprint.pdf",
			Author:      "Aashok Team",
			PageCount:   154,
			Reviews: []models.Review{
				{
					ID:         "r1",
					UserName:   "Sarah Jenkins",
					UserAvatar: "https://picsum.photos/seed/sarah/100/100",
					Rating:     5,
					Comment:    "Absolutely game changing. The marketing section alone is worth 10x the price.",
					Date:       "2023-11-15",
				},
				{
					ID:         "r2",
					UserName:   "Mike Ross",
					UserAvatar: "https://picsum.photos/seed/mike/100/100",
					Rating:     4,
					Comment:    "Very solid advice, though some of the SEO tips are a bit basic.",
					Date:       "2024-01-20",
				},
			},
		},
		{
			ID:            "2",
			Title:         "Modern UI/UX Design System Pro",
			Description:   "1000+ Premium Figma components for lightning fast design workflows.",
			Price:         decimal.NewFromInt(79),
			OriginalPrice: decimal.NewFromInt(149),
			Category:      models.CategoryTemplate,
			Rating:        4.9,
			ReviewsCount:  1,
			Image:         "https://picsum.photos/seed/design/800/600",
			Features:      []string{"Figma Source File", "Dark/Light Mode", "Auto-layout 4.0", "Free Icons"},
			LongDescription: "Accelerate your design process with this robust UI kit. Built specifically for " +
				"modern web applications and mobile apps.",
			FileSize:    "45MB FIG",
			DownloadURL: "/downloads/design-system.fig",
			Reviews: []models.Review{
				{
					ID:         "r3",
					UserName:   "Elena Rodriguez",
					UserAvatar: "https://picsum.photos/seed/elena/100/100",
					Rating:     5,
					Comment:    "Best Figma kit I have ever used. Auto-layout is configured perfectly.",
					Date:       "2023-12-05",
				},
			},
		},
		{
			ID:            "3",
			Title:         "Mastering React & Gemini AI",
			Description:   "Video course on integrating LLMs into modern web applications.",
			Price:         decimal.NewFromInt(129),
			OriginalPrice: decimal.NewFromInt(199),
			Category:      models.CategoryCourse,
			Rating:        5.0,
			ReviewsCount:  1,
			Image:         "https://picsum.photos/seed/course/800/600",
			Features:      []string{"12 Hours HD Video", "Source Code Access", "Discord Support", "Certificate"},
			LongDescription: "Learn how to build the next generation of AI-powered apps. We cover everything " +
				"from RAG architectures to UI streaming with Gemini.",
			FileSize:    "4.2GB MP4",
			DownloadURL: "/downloads/react-gemini-course.zip",
			Reviews: []models.Review{
				{
					ID:         "r4",
					UserName:   "David Chen",
					UserAvatar: "https://picsum.photos/seed/david/100/100",
					Rating:     5,
					Comment:    "The Gemini integration sections are pure gold. Highly recommended for devs.",
					Date:       "2024-02-10",
				},
			},
		},
		{
			ID:            "4",
			Title:         "SEO Power Toolkit 2024",
			Description:   "Custom scripts and tools to automate your technical SEO audits.",
			Price:         decimal.NewFromInt(35),
			OriginalPrice: decimal.NewFromInt(50),
			Category:      models.CategoryTool,
			Rating:        4.7,
			ReviewsCount:  0,
			Image:         "https://picsum.photos/seed/seo/800/600",
			Features:      []string{"Python Scripts", "Excel Templates", "API Connectors", "Usage Guide"},
			LongDescription: "Automate tedious SEO tasks. These tools help you identify crawl errors, analyze " +
				"backlinks, and track rankings with minimal effort.",
			FileSize:    "5MB ZIP",
			DownloadURL: "/downloads/seo-toolkit.zip",
			Reviews:     []models.Review{},
		},
	}
}

func Bundles() []models.Bundle {
	return []models.Bundle{
		{
			ID:            "b1",
			Title:         "Ultimate Founder Pack",
			Description:   "Get the SaaS Blueprint and the SEO Power Toolkit together and save 30%!",
			ProductIDs:    []string{"1", "4"},
			Price:         decimal.NewFromInt(59),
			OriginalPrice: decimal.NewFromInt(84),
			Image:         "https://picsum.photos/seed/bundle1/800/600",
		},
	}
}

func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:    "Sarah Jenkins",
			Role:    "Founder @ BloomUI",
			Content: "AashokDigital is my go-to for high-quality templates. The UI kits saved us at least 40 hours of work.",
			Avatar:  "https://picsum.photos/seed/sarah/100/100",
		},
		{
			Name:    "David Chen",
			Role:    "Indie Hacker",
			Content: "The SaaS Blueprint eBook provided the clarity I needed to launch my first product. Highly recommended.",
			Avatar:  "https://picsum.photos/seed/david/100/100",
		},
	}
}

// DBSeed writes the seed catalog into the persisted store. Readers fall back
// to the in-binary seed on absent keys anyway, so seeding is optional; it
// exists so the admin panel starts from a persisted copy it can edit.
func DBSeed(db *gorm.DB) error {
	store := storage.NewGormStore(db)
	ctx := context.Background()

	if err := store.Set(ctx, storage.KeyProducts, Products()); err != nil {
		return err
	}
	if err := store.Set(ctx, storage.KeyBundles, Bundles()); err != nil {
		return err
	}

	log.Println("✅ Seed catalog persisted.")
	return nil
}

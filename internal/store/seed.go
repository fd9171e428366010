package store

import "github.com/ignatzorin/bulafix-backend/internal/models"

func strPtr(s string) *string { return &s }

// SeedReports возвращает демонстрационные обращения, с которыми стартует сессия.
func SeedReports() []models.Report {
	return []models.Report{
		{
			ID:                "1",
			Title:             "Burst Water Pipe on Main Street",
			Location:          "Main Street, CBD",
			Category:          models.CategoryWater,
			Status:            models.ReportStatusInProgress,
			Date:              "May 3, 2025",
			Description:       "Large water pipe burst causing flooding on the sidewalk and road. Water has been flowing for at least 5 hours.",
			ImageURL:          strPtr("https://images.unsplash.com/photo-1584677626646-7c8f83690304?auto=format&fit=crop&w=600&q=80"),
			VerificationCount: 24,
			CommentCount:      8,
		},
		{
			ID:                "2",
			Title:             "Pothole near City Hall",
			Location:          "Leopold Takawira Ave, CBD",
			Category:          models.CategoryRoads,
			Status:            models.ReportStatusReported,
			Date:              "May 2, 2025",
			Description:       "Deep pothole approximately 1 meter wide causing traffic and damage to vehicles.",
			ImageURL:          strPtr("https://images.unsplash.com/photo-1573048541234-a8a97db8cd3a?auto=format&fit=crop&w=600&q=80"),
			VerificationCount: 12,
			CommentCount:      3,
		},
		{
			ID:                "3",
			Title:             "Street Light Not Working",
			Location:          "Nkulumane 12",
			Category:          models.CategoryElectricity,
			Status:            models.ReportStatusAcknowledged,
			Date:              "May 1, 2025",
			Description:       "Street light has been out for two weeks creating safety concerns for pedestrians at night.",
			ImageURL:          strPtr("https://images.unsplash.com/photo-1582657826511-d7defde97d12?auto=format&fit=crop&w=600&q=80"),
			VerificationCount: 7,
			CommentCount:      2,
		},
		{
			ID:                "4",
			Title:             "Uncollected Garbage",
			Location:          "Luveve 5",
			Category:          models.CategorySanitation,
			Status:            models.ReportStatusResolved,
			Date:              "Apr 28, 2025",
			Description:       "Pile of garbage uncollected for 3 weeks causing bad smell and health concerns.",
			ImageURL:          strPtr("https://images.unsplash.com/photo-1597714026720-8f74c62310ba?auto=format&fit=crop&w=600&q=80"),
			VerificationCount: 19,
			CommentCount:      5,
		},
		{
			ID:                "5",
			Title:             "Blocked Drainage System",
			Location:          "Mpopoma",
			Category:          models.CategoryDrainage,
			Status:            models.ReportStatusReported,
			Date:              "Apr 27, 2025",
			Description:       "Drain blocked with debris causing water to pool during rain.",
			VerificationCount: 5,
			CommentCount:      1,
		},
		{
			ID:                "6",
			Title:             "Broken Public Bench",
			Location:          "Centenary Park",
			Category:          models.CategoryPublicSpaces,
			Status:            models.ReportStatusRejected,
			Date:              "Apr 25, 2025",
			Description:       "Wooden bench broken and has sharp edges that could cause injury.",
			VerificationCount: 4,
			CommentCount:      6,
		},
	}
}

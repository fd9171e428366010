// Package content содержит статические данные страниц: телефоны служб,
// истории сообщества и демонстрационные графики прозрачности.
package content

import "github.com/ignatzorin/bulafix-backend/internal/models"

func Helplines() []models.Helpline {
	return []models.Helpline{
		{Label: "Police Emergency", Number: "+263 292 2710"},
		{Label: "City Council Hotline", Number: "+263 292 71290"},
		{Label: "BulaFix Support", Number: "+263 77 1234567"},
	}
}

func SuccessStories() []models.SuccessStory {
	return []models.SuccessStory{
		{
			ID:             "1",
			Title:          "Water Restoration in Nkulumane",
			Author:         "Themba Moyo",
			AuthorInitials: "TM",
			Date:           "May 1, 2025",
			Content:        "After our community collectively reported consistent water shortages through BulaFix, the council prioritized pipe repairs in our area. Within two weeks, we saw improved water pressure and more consistent supply. This shows the power of organized community reporting!",
			Category:       models.CategoryWater,
			Area:           "Nkulumane",
			Likes:          24,
			Comments:       8,
		},
		{
			ID:             "2",
			Title:          "Street Lighting Makes Our Neighborhood Safer",
			Author:         "Nomsa Dube",
			AuthorInitials: "ND",
			Date:           "April 28, 2025",
			Content:        "Our street had non-functional lights for over six months, creating safety concerns especially for women walking in the evening. After mapping all broken lights on BulaFix with photo evidence, the electrical department responded within 10 days. The entire street now has working LED lights, and residents feel much safer.",
			Category:       models.CategoryElectricity,
			Area:           "Mpopoma",
			Likes:          32,
			Comments:       12,
		},
		{
			ID:             "3",
			Title:          "Community Clean-Up Success",
			Author:         "Sibusiso Ndlovu",
			AuthorInitials: "SN",
			Date:           "April 25, 2025",
			Content:        "What started as reports about uncollected garbage turned into a neighborhood initiative. After reporting the issue on BulaFix, we organized a community clean-up while waiting for council response. The council saw our effort and provided trucks and equipment to support us. Now we have a monthly clean-up schedule with council support!",
			Category:       models.CategorySanitation,
			Area:           "Lobengula",
			Likes:          41,
			Comments:       15,
		},
	}
}

func UpcomingEvents() []models.CommunityEvent {
	return []models.CommunityEvent{
		{
			ID:          "1",
			Title:       "Community Clean-up Day",
			Date:        "May 15, 2025",
			Time:        "09:00 - 12:00",
			Location:    "Nkulumane Shopping Centre",
			Description: "Join us for a community clean-up initiative to keep our neighborhood beautiful. Tools and refreshments will be provided.",
			Attendees:   28,
		},
		{
			ID:          "2",
			Title:       "Water Conservation Workshop",
			Date:        "May 22, 2025",
			Time:        "14:00 - 16:00",
			Location:    "Bulawayo Public Library",
			Description: "Learn practical techniques for water conservation in your home and garden during this interactive workshop.",
			Attendees:   17,
		},
		{
			ID:          "3",
			Title:       "BulaFix Ambassador Training",
			Date:        "May 29, 2025",
			Time:        "10:00 - 13:00",
			Location:    "City Hall",
			Description: "Training session for community members who want to become BulaFix ambassadors and help others use the platform effectively.",
			Attendees:   12,
		},
	}
}

func Ambassadors() []models.Ambassador {
	return []models.Ambassador{
		{Name: "Themba Moyo", Initials: "TM", Area: "Nkulumane", Reports: 47, Verifications: 126, Joined: "January 2025"},
		{Name: "Nomsa Dube", Initials: "ND", Area: "Mpopoma", Reports: 38, Verifications: 93, Joined: "February 2025"},
		{Name: "Sibusiso Ndlovu", Initials: "SN", Area: "Lobengula", Reports: 29, Verifications: 84, Joined: "March 2025"},
		{Name: "Zanele Nyoni", Initials: "ZN", Area: "Pumula", Reports: 26, Verifications: 78, Joined: "February 2025"},
	}
}

// ReportTemplates возвращает карточки быстрого обращения со страницы отправки.
func ReportTemplates() []models.ReportTemplate {
	return []models.ReportTemplate{
		{
			Category:    models.CategorySanitation,
			Title:       "Sewage Burst",
			Description: "Sewage flowing into the road from a burst pipe.",
			ImageURL:    "/lovable-uploads/c7ea83ed-0925-4d7d-a716-fdc698972198.png",
		},
		{
			Category:    models.CategoryRoads,
			Title:       "Pothole",
			Description: "Dangerous pothole damaging vehicles on the road.",
			ImageURL:    "/lovable-uploads/2cb3bbfe-a8e3-4a26-8ce1-471fc6665891.png",
		},
	}
}

// BudgetAllocation возвращает доли бюджета по направлениям, %.
func BudgetAllocation() []models.ChartPoint {
	return []models.ChartPoint{
		{Name: "Water", Value: 35, Color: "#0ea5e9"},
		{Name: "Roads", Value: 25, Color: "#f59e0b"},
		{Name: "Electricity", Value: 20, Color: "#10b981"},
		{Name: "Sanitation", Value: 15, Color: "#6366f1"},
		{Name: "Other", Value: 5, Color: "#8b5cf6"},
	}
}

func MonthlyReports() []models.MonthlyReports {
	return []models.MonthlyReports{
		{Name: "Jan", Reports: 65, Resolved: 40},
		{Name: "Feb", Reports: 75, Resolved: 55},
		{Name: "Mar", Reports: 85, Resolved: 60},
		{Name: "Apr", Reports: 70, Resolved: 50},
		{Name: "May", Reports: 90, Resolved: 65},
		{Name: "Jun", Reports: 100, Resolved: 70},
	}
}

// ResponseTimes возвращает среднее время реакции по месяцам, в днях.
func ResponseTimes() []models.ChartPoint {
	return []models.ChartPoint{
		{Name: "Jan", Value: 5.2},
		{Name: "Feb", Value: 4.8},
		{Name: "Mar", Value: 4.5},
		{Name: "Apr", Value: 4.1},
		{Name: "May", Value: 3.8},
		{Name: "Jun", Value: 3.5},
	}
}

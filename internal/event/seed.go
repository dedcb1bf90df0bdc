package event

import (
	"time"
)

// SeedEvents is the demo catalog written on first run, standing in for a
// real event backend.
func SeedEvents() []Event {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	return []Event{
		{
			ID:            "11c7d584-2c5a-4c0b-9a6f-0d26bd61a6f3",
			Title:         "Web Development Summit",
			Description:   "Join us for the latest in web development technologies and trends.",
			Type:          TypeConference,
			StartDate:     day(2025, time.April, 15),
			EndDate:       day(2025, time.April, 17),
			StartTime:     "09:00",
			EndTime:       "17:00",
			Location:      "Tech Center",
			Address:       "123 Innovation St, San Francisco, CA",
			Privacy:       PrivacyPublic,
			Attendees:     50,
			MaxAttendance: 500,
		},
		{
			ID:            "5f1ed1fb-4f2c-4e86-a3a5-1df6f2f2b9de",
			Title:         "UX Design Workshop",
			Description:   "Hands-on workshop focusing on user experience design principles.",
			Type:          TypeWorkshop,
			StartDate:     day(2025, time.April, 10),
			EndDate:       day(2025, time.April, 10),
			StartTime:     "14:00",
			EndTime:       "18:00",
			Location:      "Design Studio",
			Address:       "456 Creative Ave, New York, NY",
			Privacy:       PrivacyPublic,
			Attendees:     3,
			MaxAttendance: 30,
		},
		{
			ID:            "8e53c1f2-95b4-4f30-9d9e-3a5a3c61a8c7",
			Title:         "React Developer Meetup",
			Description:   "Monthly meetup for developers to share knowledge and network.",
			Type:          TypeMeetup,
			StartDate:     day(2025, time.April, 5),
			EndDate:       day(2025, time.April, 5),
			StartTime:     "18:30",
			EndTime:       "21:00",
			Location:      "Startup Hub",
			Address:       "789 Tech Blvd, Austin, TX",
			Privacy:       PrivacyPublic,
			Attendees:     10,
			MaxAttendance: 100,
			Recurring:     true,
			RecurringType: RecurMonthly,
		},
		{
			ID:            "0b6a4ed8-7c57-4b7e-8f29-6dd48e2b0c15",
			Title:         "AI in Business Seminar",
			Description:   "Learn how AI is transforming business operations and strategy.",
			Type:          TypeSeminar,
			StartDate:     day(2025, time.April, 20),
			EndDate:       day(2025, time.April, 20),
			StartTime:     "10:00",
			EndTime:       "15:00",
			Location:      "Business Center",
			Address:       "101 Enterprise Dr, Chicago, IL",
			Privacy:       PrivacyPublic,
			Attendees:     15,
			MaxAttendance: 150,
		},
		{
			ID:            "c3f9f7aa-08a2-49d2-902b-f7f1f8a2e6b0",
			Title:         "Tech Startup Exhibition",
			Description:   "Showcase of innovative tech startups and their products.",
			Type:          TypeExhibition,
			StartDate:     day(2025, time.May, 2),
			EndDate:       day(2025, time.May, 4),
			StartTime:     "10:00",
			EndTime:       "18:00",
			Location:      "Convention Center",
			Address:       "555 Expo St, Seattle, WA",
			Privacy:       PrivacyPublic,
			Attendees:     100,
			MaxAttendance: 1000,
		},
		{
			ID:            "a2e7b7d1-64c0-4f4e-90cb-2e9ddc706a42",
			Title:         "Cybersecurity Conference",
			Description:   "The latest trends and best practices in cybersecurity.",
			Type:          TypeConference,
			StartDate:     day(2025, time.May, 15),
			EndDate:       day(2025, time.May, 17),
			StartTime:     "09:00",
			EndTime:       "17:00",
			Location:      "Security Institute",
			Address:       "202 Cyber Way, Boston, MA",
			Privacy:       PrivacyPublic,
			Attendees:     30,
			MaxAttendance: 300,
		},
	}
}

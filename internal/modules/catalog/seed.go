// README: Demo seed data loaded at startup.
package catalog

import "time"

func mustTime(v string) time.Time {
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDate(v string) time.Time {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		panic(err)
	}
	return t
}

// DemoOrders returns the startup order catalog.
func DemoOrders() []Order {
	return []Order{
		{
			ID:            "order_123",
			ServiceTime:   mustTime("2023-11-01 14:00:00"),
			ServiceType:   "deep cleaning",
			ServicePerson: "Auntie Zhang",
			Status:        StatusConfirmed,
		},
		{
			ID:            "order_124",
			ServiceTime:   mustTime("2023-11-08 14:00:00"),
			ServiceType:   "regular cleaning",
			ServicePerson: "Auntie Li",
			Status:        StatusConfirmed,
		},
	}
}

// DemoNotes returns the startup service-note history for the demo user.
func DemoNotes() []ServiceNote {
	return []ServiceNote{
		{
			ID:            "note_123",
			UserID:        "user_123",
			ServiceDate:   mustDate("2023-10-15"),
			ServicePerson: "Auntie Zhang",
			Content:       "Cleaned the living room and bedrooms; the customer was satisfied and asked to add kitchen cleaning next visit",
		},
		{
			ID:            "note_124",
			UserID:        "user_123",
			ServiceDate:   mustDate("2023-10-01"),
			ServicePerson: "Auntie Li",
			Content:       "Deep-cleaned the kitchen and bathroom; the customer left suggestions to keep in mind for the next visit",
		},
	}
}

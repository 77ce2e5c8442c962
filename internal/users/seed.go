package users

func Seed() []User {
	return []User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Role: "admin", Active: true},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Role: "user", Active: true},
		{ID: 3, Name: "Carol Davis", Email: "carol@example.com", Role: "user", Active: false},
		{ID: 4, Name: "David Wilson", Email: "david@example.com", Role: "moderator", Active: true},
	}
}

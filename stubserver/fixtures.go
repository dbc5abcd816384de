package stubserver

// DefaultAccounts returns the fixture accounts the stub is seeded with when
// run from the command line.
func DefaultAccounts() []Account {
	return []Account{
		{
			TelegramID:     12345,
			TelegramLinked: true,
			Email:          "alice@example.com",
			Password:       "alice-secret",
		},
		{
			TelegramID:     20001,
			TelegramLinked: true,
			Password:       "bob-secret",
		},
		{
			TelegramID:     20002,
			Email:          "carol@example.org",
			Password:       "carol-secret",
		},
		{
			// Orphaned account: no channel can deliver a code.
			TelegramID: 20003,
			Password:   "dave-secret",
		},
	}
}

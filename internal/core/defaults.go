package core

// DefaultMenuCategories seeds the category set on first run.
func DefaultMenuCategories() []string {
	return []string{"Fast Food", "Snacks", "Beverages", "Desserts", "Others"}
}

// DefaultMenuItems seeds the menu on first run.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{ID: NewID(), Name: "Dabeli", Price: 20, Category: "Fast Food"},
		{ID: NewID(), Name: "Sandwich", Price: 30, Category: "Fast Food"},
		{ID: NewID(), Name: "Vada Pav", Price: 15, Category: "Fast Food"},
		{ID: NewID(), Name: "Samosa", Price: 10, Category: "Snacks"},
		{ID: NewID(), Name: "Chai", Price: 10, Category: "Beverages"},
	}
}

// DefaultDocument returns the state a fresh installation starts from:
// empty orders and expenses, the seeded menu and category list.
func DefaultDocument() Document {
	return Document{
		Orders:         []Order{},
		MenuItems:      DefaultMenuItems(),
		Expenses:       []Expense{},
		MenuCategories: DefaultMenuCategories(),
	}
}

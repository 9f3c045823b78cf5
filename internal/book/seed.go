package book

// SeedBooks returns the starter catalog written when the book table is first
// created. The list is returned fresh on every call so callers may modify it.
func SeedBooks() []Book {
	return []Book{
		{ID: 3001, Title: "A Tale of Two Cities", Author: "Charles Dickens", Qty: 30},
		{ID: 3002, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", Qty: 40},
		{ID: 3003, Title: "The Lion, the Witch and the Wardrobe", Author: "C. S. Lewis", Qty: 25},
		{ID: 3004, Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Qty: 37},
		{ID: 3005, Title: "Alice in Wonderland", Author: "Lewis Carrol", Qty: 12},
		{ID: 3006, Title: "The Anxious Generation", Author: "Jonathon Haidt", Qty: 15},
		{ID: 3007, Title: "Onyx Storm", Author: "Rebecca Yarros", Qty: 12},
		{ID: 3008, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Qty: 40},
		{ID: 3009, Title: "1984", Author: "George Orwell", Qty: 25},
		{ID: 3010, Title: "The Girl with the Dragon Tattoo", Author: "Stieg Larsson", Qty: 35},
		{ID: 3011, Title: "Ender's Game", Author: "Orson Scott Card", Qty: 32},
	}
}

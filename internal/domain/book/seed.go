package book

const defaultCover = "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=500&auto=format&fit=crop&q=60&ixlib=rb-4.0.3"

// Seed returns the six records the shop starts with. Callers get a
// fresh slice on every call and may mutate it freely.
func Seed() []Book {
	return []Book{
		{
			ID:          "1",
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Price:       12.99,
			CoverImage:  defaultCover,
			Description: "A novel of mystery, romance, and wealth set in the Roaring Twenties. The story primarily concerns the young and mysterious millionaire Jay Gatsby and his quixotic passion and obsession with the beautiful former debutante Daisy Buchanan.",
			ISBN:        "978-0743273565",
			Publisher:   "Scribner",
			PublishYear: 1925,
			Pages:       180,
			Category:    "Classic Fiction",
			Stock:       15,
		},
		{
			ID:          "2",
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Price:       14.95,
			CoverImage:  defaultCover,
			Description: "The unforgettable novel of a childhood in a sleepy Southern town and the crisis of conscience that rocked it. It became both an instant bestseller and a critical success when it was first published and has since been translated into more than forty languages and sold more than forty million copies worldwide.",
			ISBN:        "978-0060935467",
			Publisher:   "Harper Perennial",
			PublishYear: 1960,
			Pages:       336,
			Category:    "Classic Fiction",
			Stock:       10,
		},
		{
			ID:          "3",
			Title:       "1984",
			Author:      "George Orwell",
			Price:       11.50,
			CoverImage:  defaultCover,
			Description: "Among the seminal texts of the 20th century, Nineteen Eighty-Four is a rare work that grows more haunting as its futuristic purgatory becomes more real. Published in 1949, the book offers political satirist George Orwell's nightmare vision of a totalitarian, bureaucratic world and one poor stiff's attempt to find individuality.",
			ISBN:        "978-0451524935",
			Publisher:   "Signet Classic",
			PublishYear: 1949,
			Pages:       328,
			Category:    "Dystopian",
			Stock:       8,
		},
		{
			ID:          "4",
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			Price:       9.99,
			CoverImage:  defaultCover,
			Description: "Since its immediate success in 1813, Pride and Prejudice has remained one of the most popular novels in the English language. Jane Austen called this brilliant work her \"own darling child\" and its vivacious heroine, Elizabeth Bennet, \"as delightful a creature as ever appeared in print.\"",
			ISBN:        "978-0141439518",
			Publisher:   "Penguin Classics",
			PublishYear: 1813,
			Pages:       480,
			Category:    "Classic Fiction",
			Stock:       12,
		},
		{
			ID:          "5",
			Title:       "The Hobbit",
			Author:      "J.R.R. Tolkien",
			Price:       13.95,
			CoverImage:  defaultCover,
			Description: "Bilbo Baggins is a hobbit who enjoys a comfortable, unambitious life, rarely traveling any farther than his pantry or cellar. But his contentment is disturbed when the wizard Gandalf and a company of dwarves arrive on his doorstep one day to whisk him away on an adventure.",
			ISBN:        "978-0547928227",
			Publisher:   "Houghton Mifflin Harcourt",
			PublishYear: 1937,
			Pages:       300,
			Category:    "Fantasy",
			Stock:       20,
		},
		{
			ID:          "6",
			Title:       "Sapiens: A Brief History of Humankind",
			Author:      "Yuval Noah Harari",
			Price:       16.99,
			CoverImage:  defaultCover,
			Description: "From a renowned historian comes a groundbreaking narrative of humanity's creation and evolution that explores the ways in which biology and history have defined us and enhanced our understanding of what it means to be \"human.\"",
			ISBN:        "978-0062316097",
			Publisher:   "Harper",
			PublishYear: 2015,
			Pages:       464,
			Category:    "Non-fiction",
			Stock:       7,
		},
	}
}

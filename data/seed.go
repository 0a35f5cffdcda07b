// Package data holds the built-in seed dataset used when durable storage
// is empty or unreadable.
package data

import "techquiz/models"

// SeedCategories returns the default category set.
func SeedCategories() []models.Category {
	return []models.Category{
		{
			ID:          "web-dev",
			Name:        "Web Development",
			Description: "HTML, CSS, JavaScript & Frameworks",
			Icon:        "🌐",
		},
		{
			ID:          "ai-ml",
			Name:        "Artificial Intelligence",
			Description: "Machine Learning, Neural Networks & AI",
			Icon:        "🤖",
		},
		{
			ID:          "cs-basics",
			Name:        "CS Basics",
			Description: "Data Structures, Algorithms & Fundamentals",
			Icon:        "💻",
		},
	}
}

// SeedQuestions returns the default question set, five per seed category.
func SeedQuestions() []models.Question {
	return []models.Question{
		{
			ID:         "web-1",
			CategoryID: "web-dev",
			Text:       "What does HTML stand for?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Hyper Text Markup Language"},
				models.OptionB: {Text: "High Tech Modern Language"},
				models.OptionC: {Text: "Home Tool Markup Language"},
				models.OptionD: {Text: "Hyperlinks Text Mark Language"},
			},
			CorrectAnswer: models.OptionA,
		},
		{
			ID:         "web-2",
			CategoryID: "web-dev",
			Text:       "Which CSS property is used to change text color?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "text-color"},
				models.OptionB: {Text: "font-color"},
				models.OptionC: {Text: "color"},
				models.OptionD: {Text: "text-style"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "web-3",
			CategoryID: "web-dev",
			Text:       "What is the correct way to declare a JavaScript variable?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "variable x = 5"},
				models.OptionB: {Text: "let x = 5"},
				models.OptionC: {Text: "v x = 5"},
				models.OptionD: {Text: "declare x = 5"},
			},
			CorrectAnswer: models.OptionB,
		},
		{
			ID:         "web-4",
			CategoryID: "web-dev",
			Text:       "Which framework is developed by Facebook?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Angular"},
				models.OptionB: {Text: "Vue.js"},
				models.OptionC: {Text: "React"},
				models.OptionD: {Text: "Svelte"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "web-5",
			CategoryID: "web-dev",
			Text:       "What does CSS stand for?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Computer Style Sheets"},
				models.OptionB: {Text: "Creative Style Sheets"},
				models.OptionC: {Text: "Cascading Style Sheets"},
				models.OptionD: {Text: "Colorful Style Sheets"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "ai-1",
			CategoryID: "ai-ml",
			Text:       "What is the primary goal of supervised learning?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Clustering data"},
				models.OptionB: {Text: "Learning from labeled data"},
				models.OptionC: {Text: "Generating random outputs"},
				models.OptionD: {Text: "Reducing data size"},
			},
			CorrectAnswer: models.OptionB,
		},
		{
			ID:         "ai-2",
			CategoryID: "ai-ml",
			Text:       "Which algorithm is used for classification problems?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "K-Means"},
				models.OptionB: {Text: "Linear Regression"},
				models.OptionC: {Text: "Decision Tree"},
				models.OptionD: {Text: "PCA"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "ai-3",
			CategoryID: "ai-ml",
			Text:       "What does CNN stand for in deep learning?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Computer Neural Network"},
				models.OptionB: {Text: "Convolutional Neural Network"},
				models.OptionC: {Text: "Connected Node Network"},
				models.OptionD: {Text: "Central Nervous Network"},
			},
			CorrectAnswer: models.OptionB,
		},
		{
			ID:         "ai-4",
			CategoryID: "ai-ml",
			Text:       "Which language is most popular for AI/ML development?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Java"},
				models.OptionB: {Text: "C++"},
				models.OptionC: {Text: "Python"},
				models.OptionD: {Text: "Ruby"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "ai-5",
			CategoryID: "ai-ml",
			Text:       "What is overfitting in machine learning?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Model is too simple"},
				models.OptionB: {Text: "Model performs well on training but poorly on new data"},
				models.OptionC: {Text: "Model has too few parameters"},
				models.OptionD: {Text: "Model trains too slowly"},
			},
			CorrectAnswer: models.OptionB,
		},
		{
			ID:         "cs-1",
			CategoryID: "cs-basics",
			Text:       "What is the time complexity of binary search?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "O(n)"},
				models.OptionB: {Text: "O(n²)"},
				models.OptionC: {Text: "O(log n)"},
				models.OptionD: {Text: "O(1)"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "cs-2",
			CategoryID: "cs-basics",
			Text:       "Which data structure uses LIFO principle?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Queue"},
				models.OptionB: {Text: "Stack"},
				models.OptionC: {Text: "Array"},
				models.OptionD: {Text: "Linked List"},
			},
			CorrectAnswer: models.OptionB,
		},
		{
			ID:         "cs-3",
			CategoryID: "cs-basics",
			Text:       "What does RAM stand for?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Read Access Memory"},
				models.OptionB: {Text: "Random Access Memory"},
				models.OptionC: {Text: "Run Application Memory"},
				models.OptionD: {Text: "Rapid Action Memory"},
			},
			CorrectAnswer: models.OptionB,
		},
		{
			ID:         "cs-4",
			CategoryID: "cs-basics",
			Text:       "Which sorting algorithm has the best average case?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "Bubble Sort"},
				models.OptionB: {Text: "Selection Sort"},
				models.OptionC: {Text: "Quick Sort"},
				models.OptionD: {Text: "Insertion Sort"},
			},
			CorrectAnswer: models.OptionC,
		},
		{
			ID:         "cs-5",
			CategoryID: "cs-basics",
			Text:       "What is the base of the binary number system?",
			Options: map[models.OptionKey]models.QuestionOption{
				models.OptionA: {Text: "8"},
				models.OptionB: {Text: "10"},
				models.OptionC: {Text: "2"},
				models.OptionD: {Text: "16"},
			},
			CorrectAnswer: models.OptionC,
		},
	}
}

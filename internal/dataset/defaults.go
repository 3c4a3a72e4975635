package dataset

import (
	"github.com/abhisek/prepiq/internal/mocktest"
	"github.com/abhisek/prepiq/internal/readiness"
	"github.com/abhisek/prepiq/internal/tracker"
	"github.com/abhisek/prepiq/internal/weakness"
)

// Default returns the built-in single-user dataset. Each call returns
// fresh values.
func Default() *Dataset {
	return &Dataset{
		Performance: DefaultPerformance(),
		Companies:   DefaultCompanies(),
		Problems:    DefaultProblems(),
		MockTests:   DefaultMockTests(),
	}
}

// DefaultPerformance is the sample practice record for twelve topics.
func DefaultPerformance() []weakness.TopicPerformance {
	return []weakness.TopicPerformance{
		{Topic: "Array", Attempts: 24, Solved: 19, AvgTime: 22},
		{Topic: "String", Attempts: 18, Solved: 14, AvgTime: 20},
		{Topic: "Linked List", Attempts: 14, Solved: 10, AvgTime: 28},
		{Topic: "Stack", Attempts: 12, Solved: 9, AvgTime: 18},
		{Topic: "Queue", Attempts: 8, Solved: 6, AvgTime: 15},
		{Topic: "Tree", Attempts: 16, Solved: 9, AvgTime: 35},
		{Topic: "Graph", Attempts: 12, Solved: 4, AvgTime: 55},
		{Topic: "DP", Attempts: 20, Solved: 7, AvgTime: 48},
		{Topic: "Greedy", Attempts: 10, Solved: 7, AvgTime: 25},
		{Topic: "Binary Search", Attempts: 14, Solved: 11, AvgTime: 20},
		{Topic: "Backtracking", Attempts: 8, Solved: 3, AvgTime: 45},
		{Topic: "Heap", Attempts: 6, Solved: 4, AvgTime: 30},
	}
}

// DefaultCompanies is the topic weighting of the four supported companies.
func DefaultCompanies() readiness.CompanyPatterns {
	return readiness.CompanyPatterns{
		"Amazon": {
			"Array": 0.20, "DP": 0.25, "Graph": 0.15, "Tree": 0.15,
			"Linked List": 0.05, "String": 0.10, "Greedy": 0.05, "Binary Search": 0.05,
		},
		"Google": {
			"Array": 0.15, "DP": 0.30, "Graph": 0.20, "Tree": 0.10,
			"String": 0.05, "Backtracking": 0.10, "Binary Search": 0.05, "Heap": 0.05,
		},
		"Meta": {
			"Array": 0.25, "String": 0.15, "DP": 0.20, "Graph": 0.10,
			"Tree": 0.10, "Binary Search": 0.10, "Stack": 0.05, "Queue": 0.05,
		},
		"Apple": {
			"Array": 0.20, "String": 0.15, "Linked List": 0.15, "Tree": 0.15,
			"DP": 0.15, "Stack": 0.05, "Queue": 0.05, "Greedy": 0.10,
		},
	}
}

func solved(id, title, topic string, d tracker.Difficulty, minutes, attempts, confidence int, date string) tracker.Problem {
	return tracker.Problem{
		ID: id, Title: title, Topic: topic, Difficulty: d,
		TimeTaken:    &minutes,
		AttemptCount: &attempts,
		Confidence:   &confidence,
		Solved:       true,
		SolvedAt:     &date,
	}
}

func unsolved(id, title, topic string, d tracker.Difficulty, attempts, confidence int) tracker.Problem {
	return tracker.Problem{
		ID: id, Title: title, Topic: topic, Difficulty: d,
		AttemptCount: &attempts,
		Confidence:   &confidence,
	}
}

// DefaultProblems is the built-in problem bank.
func DefaultProblems() []tracker.Problem {
	const (
		easy   = tracker.Easy
		medium = tracker.Medium
		hard   = tracker.Hard
	)
	return []tracker.Problem{
		solved("p1", "Two Sum", "Array", easy, 15, 1, 5, "2026-02-20"),
		solved("p2", "Best Time to Buy and Sell Stock", "Array", easy, 12, 1, 4, "2026-02-20"),
		solved("p3", "Product of Array Except Self", "Array", medium, 28, 2, 3, "2026-02-21"),
		solved("p4", "Maximum Subarray", "Array", medium, 20, 1, 4, "2026-02-21"),
		solved("p5", "Container With Most Water", "Array", medium, 35, 3, 2, "2026-02-22"),
		solved("p6", "Valid Parentheses", "Stack", easy, 10, 1, 5, "2026-02-19"),
		solved("p7", "Longest Substring Without Repeating", "String", medium, 25, 2, 3, "2026-02-19"),
		solved("p8", "Reverse Linked List", "Linked List", easy, 12, 1, 5, "2026-02-18"),
		solved("p9", "Binary Tree Inorder Traversal", "Tree", easy, 15, 1, 4, "2026-02-18"),
		solved("p10", "Climbing Stairs", "DP", easy, 18, 1, 4, "2026-02-17"),
		unsolved("p11", "Longest Common Subsequence", "DP", medium, 3, 1),
		unsolved("p12", "Edit Distance", "DP", hard, 2, 1),
		unsolved("p13", "Course Schedule", "Graph", medium, 2, 1),
		solved("p14", "Number of Islands", "Graph", medium, 40, 3, 2, "2026-02-22"),
		unsolved("p15", "Word Search", "Backtracking", medium, 1, 1),
		unsolved("p16", "Merge K Sorted Lists", "Heap", hard, 1, 1),
		solved("p17", "Binary Search", "Binary Search", easy, 8, 1, 5, "2026-02-16"),
		solved("p18", "Search in Rotated Sorted Array", "Binary Search", medium, 30, 2, 3, "2026-02-22"),
		unsolved("p19", "Trapping Rain Water", "Array", hard, 2, 1),
		solved("p20", "Validate BST", "Tree", medium, 25, 2, 3, "2026-02-23"),
		unsolved("p21", "LRU Cache", "Linked List", medium, 2, 2),
		solved("p22", "Group Anagrams", "String", medium, 22, 1, 4, "2026-02-23"),
		solved("p23", "Coin Change", "DP", medium, 35, 3, 2, "2026-02-24"),
		unsolved("p24", "Implement Trie", "Tree", medium, 1, 2),
		solved("p25", "Activity Selection", "Greedy", easy, 15, 1, 4, "2026-02-24"),
	}
}

// DefaultMockTests is the sample mock-test history.
func DefaultMockTests() []mocktest.Result {
	return []mocktest.Result{
		{
			ID: "mt1", Type: mocktest.Pattern, Category: "Array",
			Score: 85, TotalQuestions: 10, TimeTaken: 45, Date: "2026-02-20",
			Strengths:  []string{"Two pointer technique", "Sliding window"},
			Weaknesses: []string{"Kadane's algorithm edge cases"},
		},
		{
			ID: "mt2", Type: mocktest.Company, Category: "Amazon",
			Score: 62, TotalQuestions: 10, TimeTaken: 55, Date: "2026-02-22",
			Strengths:  []string{"Array manipulation", "Hash maps"},
			Weaknesses: []string{"Graph traversal", "DP optimization"},
		},
		{
			ID: "mt3", Type: mocktest.Pattern, Category: "DP",
			Score: 40, TotalQuestions: 10, TimeTaken: 60, Date: "2026-02-24",
			Strengths:  []string{"Basic memoization"},
			Weaknesses: []string{"State transition", "Space optimization", "Interval scheduling"},
		},
	}
}

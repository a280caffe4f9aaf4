// Command seeder populates the problem catalog with the starter curriculum
// (chapters, topics and a set of classic problems). It is idempotent only in
// the sense that re-running it against a seeded database creates duplicates;
// run it once against a fresh schema.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/adapter/postgres"
	"github.com/algotrack/algotrack-backend/internal/adapter/postgres/catalog"
	"github.com/algotrack/algotrack-backend/internal/app"
	"github.com/algotrack/algotrack-backend/internal/config"
	"github.com/algotrack/algotrack-backend/internal/domain"
)

type problemSeed struct {
	Title           string
	Description     string
	Difficulty      domain.Difficulty
	LeetCode        string
	YouTube         string
	GeeksForGeeks   string
	Tags            []string
	TimeComplexity  string
	SpaceComplexity string
}

type topicSeed struct {
	Name        string
	Description string
	Problems    []problemSeed
}

type chapterSeed struct {
	Name        string
	Description string
	Icon        string
	Topics      []topicSeed
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := catalog.New(pool)
	txManager := postgres.NewTxManager(pool)

	var chapters, topics, problems int

	// All-or-nothing: a half-seeded catalog is worse than an empty one.
	err = txManager.RunInTx(ctx, func(ctx context.Context) error {
		for chapterOrder, cs := range starterCatalog() {
			icon := cs.Icon
			chapter, err := repo.CreateChapter(ctx, &domain.Chapter{
				Name:        cs.Name,
				Description: cs.Description,
				Icon:        &icon,
				Order:       chapterOrder + 1,
				IsActive:    true,
			})
			if err != nil {
				return err
			}
			chapters++

			for topicOrder, ts := range cs.Topics {
				topic, err := repo.CreateTopic(ctx, &domain.Topic{
					ChapterID:   chapter.ID,
					Name:        ts.Name,
					Description: ts.Description,
					Order:       topicOrder + 1,
					IsActive:    true,
				})
				if err != nil {
					return err
				}
				topics++

				for problemOrder, ps := range ts.Problems {
					if _, err := repo.CreateProblem(ctx, seedToProblem(topic.ID, problemOrder+1, ps)); err != nil {
						return err
					}
					problems++
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalog seeded",
		slog.Int("chapters", chapters),
		slog.Int("topics", topics),
		slog.Int("problems", problems),
	)
}

func seedToProblem(topicID uuid.UUID, order int, ps problemSeed) *domain.Problem {
	links := domain.ProblemLinks{}
	if ps.LeetCode != "" {
		links.LeetCode = &ps.LeetCode
	}
	if ps.YouTube != "" {
		links.YouTube = &ps.YouTube
	}
	if ps.GeeksForGeeks != "" {
		links.GeeksForGeeks = &ps.GeeksForGeeks
	}

	problem := &domain.Problem{
		TopicID:     topicID,
		Title:       ps.Title,
		Description: ps.Description,
		Difficulty:  ps.Difficulty,
		Links:       links,
		Tags:        ps.Tags,
		Order:       order,
		IsActive:    true,
	}
	if ps.TimeComplexity != "" {
		problem.TimeComplexity = &ps.TimeComplexity
	}
	if ps.SpaceComplexity != "" {
		problem.SpaceComplexity = &ps.SpaceComplexity
	}
	return problem
}

// starterCatalog is the curriculum seeded into a fresh installation.
func starterCatalog() []chapterSeed {
	return []chapterSeed{
		{
			Name:        "Basic Data Structures",
			Description: "Fundamental data structures every programmer should master",
			Icon:        "🗃️",
			Topics: []topicSeed{
				{
					Name:        "Arrays",
					Description: "Problems related to array data structure: indexing, traversal, searching, and sorting",
					Problems: []problemSeed{
						{
							Title:           "Two Sum",
							Description:     "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/two-sum/",
							YouTube:         "https://www.youtube.com/watch?v=KLlXCFG5TnA",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/given-an-array-a-and-a-number-x-check-for-pair-in-a-with-sum-as-x/",
							Tags:            []string{"array", "hash-table", "two-sum"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(n)",
						},
						{
							Title:           "Best Time to Buy and Sell Stock",
							Description:     "You are given an array prices where prices[i] is the price of a given stock on the ith day. Find the maximum profit.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/best-time-to-buy-and-sell-stock/",
							YouTube:         "https://www.youtube.com/watch?v=1pkOgXD63yU",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/stock-buy-sell/",
							Tags:            []string{"array", "dynamic-programming"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Maximum Subarray (Kadane's Algorithm)",
							Description:     "Given an integer array nums, find the contiguous subarray with the largest sum and return its sum.",
							Difficulty:      domain.DifficultyMedium,
							LeetCode:        "https://leetcode.com/problems/maximum-subarray/",
							YouTube:         "https://www.youtube.com/watch?v=5WZl3MMT0Eg",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/largest-sum-contiguous-subarray/",
							Tags:            []string{"array", "divide-and-conquer", "dynamic-programming"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Contains Duplicate",
							Description:     "Given an integer array nums, return true if any value appears at least twice in the array.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/contains-duplicate/",
							YouTube:         "https://www.youtube.com/watch?v=3OamzN90kPg",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/find-duplicates-in-on-time-and-constant-extra-space/",
							Tags:            []string{"array", "hash-table", "sorting"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(n)",
						},
						{
							Title:           "Product of Array Except Self",
							Description:     "Given an integer array nums, return an array answer such that answer[i] is equal to the product of all the elements of nums except nums[i].",
							Difficulty:      domain.DifficultyMedium,
							LeetCode:        "https://leetcode.com/problems/product-of-array-except-self/",
							YouTube:         "https://www.youtube.com/watch?v=bNvIQI2wAjk",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/a-product-array-puzzle/",
							Tags:            []string{"array", "prefix-sum"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
					},
				},
				{
					Name:        "Strings",
					Description: "String manipulation, pattern matching, and text processing problems",
					Problems: []problemSeed{
						{
							Title:           "Valid Palindrome",
							Description:     "A phrase is a palindrome if, after converting all uppercase letters into lowercase letters and removing all non-alphanumeric characters, it reads the same forward and backward.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/valid-palindrome/",
							YouTube:         "https://www.youtube.com/watch?v=jJXJ16kPFWg",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/c-program-check-given-string-palindrome/",
							Tags:            []string{"string", "two-pointers"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Valid Anagram",
							Description:     "Given two strings s and t, return true if t is an anagram of s, and false otherwise.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/valid-anagram/",
							YouTube:         "https://www.youtube.com/watch?v=9UtInBqnCgA",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/check-whether-two-strings-are-anagram-of-each-other/",
							Tags:            []string{"string", "hash-table", "sorting"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Longest Palindromic Substring",
							Description:     "Given a string s, return the longest palindromic substring in s.",
							Difficulty:      domain.DifficultyMedium,
							LeetCode:        "https://leetcode.com/problems/longest-palindromic-substring/",
							YouTube:         "https://www.youtube.com/watch?v=XYQecbcd6_c",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/longest-palindrome-substring-set-1/",
							Tags:            []string{"string", "dynamic-programming"},
							TimeComplexity:  "O(n^2)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Group Anagrams",
							Description:     "Given an array of strings strs, group the anagrams together.",
							Difficulty:      domain.DifficultyMedium,
							LeetCode:        "https://leetcode.com/problems/group-anagrams/",
							YouTube:         "https://www.youtube.com/watch?v=vzdNOK2oB2E",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/given-a-sequence-of-words-print-all-anagrams-together/",
							Tags:            []string{"string", "hash-table", "sorting"},
							TimeComplexity:  "O(n * k log k)",
							SpaceComplexity: "O(n * k)",
						},
					},
				},
				{
					Name:        "Linked Lists",
					Description: "Singly, doubly, and circular linked list operations and algorithms",
				},
				{
					Name:        "Stacks and Queues",
					Description: "LIFO and FIFO data structures with their applications",
				},
			},
		},
		{
			Name:        "Advanced Data Structures",
			Description: "Complex data structures for efficient problem solving",
			Icon:        "🌳",
			Topics: []topicSeed{
				{
					Name:        "Binary Trees",
					Description: "Binary tree operations, traversals, and tree-based problems",
					Problems: []problemSeed{
						{
							Title:           "Maximum Depth of Binary Tree",
							Description:     "Given the root of a binary tree, return its maximum depth.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/maximum-depth-of-binary-tree/",
							YouTube:         "https://www.youtube.com/watch?v=hTM3phVI6YQ",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/write-a-c-program-to-find-the-maximum-depth-or-height-of-a-tree/",
							Tags:            []string{"tree", "depth-first-search", "breadth-first-search", "binary-tree"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(h)",
						},
						{
							Title:           "Invert Binary Tree",
							Description:     "Given the root of a binary tree, invert the tree, and return its root.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/invert-binary-tree/",
							YouTube:         "https://www.youtube.com/watch?v=OnSn2XEQ4MY",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/write-an-efficient-c-function-to-convert-a-tree-into-its-mirror-tree/",
							Tags:            []string{"tree", "depth-first-search", "binary-tree"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(h)",
						},
					},
				},
				{
					Name:        "Binary Search Trees",
					Description: "BST operations, validation, and balanced tree concepts",
				},
				{
					Name:        "Heaps",
					Description: "Min-heap, max-heap operations and priority queue problems",
				},
				{
					Name:        "Hash Tables",
					Description: "Hashing techniques, collision resolution, and hash-based problems",
				},
			},
		},
		{
			Name:        "Algorithms",
			Description: "Core algorithmic paradigms and techniques",
			Icon:        "⚙️",
			Topics: []topicSeed{
				{
					Name:        "Sorting Algorithms",
					Description: "Various sorting techniques and their applications",
				},
				{
					Name:        "Searching Algorithms",
					Description: "Binary search and its variations",
				},
				{
					Name:        "Two Pointers",
					Description: "Two pointer technique for array and string problems",
				},
				{
					Name:        "Sliding Window",
					Description: "Sliding window technique for subarray problems",
				},
			},
		},
		{
			Name:        "Dynamic Programming",
			Description: "Optimization problems using memoization and tabulation",
			Icon:        "🧠",
			Topics: []topicSeed{
				{
					Name:        "Basic DP",
					Description: "Fundamental dynamic programming concepts and problems",
					Problems: []problemSeed{
						{
							Title:           "Fibonacci Number",
							Description:     "The Fibonacci numbers, commonly denoted F(n) form a sequence, called the Fibonacci sequence.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/fibonacci-number/",
							YouTube:         "https://www.youtube.com/watch?v=oBt53YbR9Kk",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/program-for-nth-fibonacci-number/",
							Tags:            []string{"math", "dynamic-programming", "recursion", "memoization"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Climbing Stairs",
							Description:     "You are climbing a staircase. It takes n steps to reach the top. Each time you can either climb 1 or 2 steps.",
							Difficulty:      domain.DifficultyEasy,
							LeetCode:        "https://leetcode.com/problems/climbing-stairs/",
							YouTube:         "https://www.youtube.com/watch?v=Y0lT9Fck7qI",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/count-ways-reach-nth-stair/",
							Tags:            []string{"math", "dynamic-programming", "memoization"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "House Robber",
							Description:     "You are a professional robber planning to rob houses along a street. Each house has a certain amount of money stashed.",
							Difficulty:      domain.DifficultyMedium,
							LeetCode:        "https://leetcode.com/problems/house-robber/",
							YouTube:         "https://www.youtube.com/watch?v=xlvhyfcoQa4",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/find-maximum-sum-such-that-no-two-elements-are-adjacent/",
							Tags:            []string{"array", "dynamic-programming"},
							TimeComplexity:  "O(n)",
							SpaceComplexity: "O(1)",
						},
						{
							Title:           "Coin Change",
							Description:     "You are given an integer array coins representing coins of different denominations and an integer amount representing a total amount of money.",
							Difficulty:      domain.DifficultyMedium,
							LeetCode:        "https://leetcode.com/problems/coin-change/",
							YouTube:         "https://www.youtube.com/watch?v=H9bfqozjoqs",
							GeeksForGeeks:   "https://www.geeksforgeeks.org/coin-change-dp-7/",
							Tags:            []string{"array", "dynamic-programming", "breadth-first-search"},
							TimeComplexity:  "O(n * amount)",
							SpaceComplexity: "O(amount)",
						},
					},
				},
				{
					Name:        "2D DP",
					Description: "Two-dimensional dynamic programming problems",
				},
				{
					Name:        "DP on Strings",
					Description: "Dynamic programming on string problems",
				},
			},
		},
		{
			Name:        "Graph Theory",
			Description: "Graph algorithms and network problems",
			Icon:        "🕸️",
			Topics: []topicSeed{
				{
					Name:        "Graph Basics",
					Description: "Graph representation and basic traversal algorithms",
				},
				{
					Name:        "Shortest Path",
					Description: "Dijkstra, Bellman-Ford, and Floyd-Warshall algorithms",
				},
			},
		},
		{
			Name:        "Mathematical Algorithms",
			Description: "Number theory, geometry, and mathematical problem solving",
			Icon:        "🧮",
			Topics: []topicSeed{
				{
					Name:        "Number Theory",
					Description: "Prime numbers, GCD, LCM, and modular arithmetic",
				},
			},
		},
	}
}

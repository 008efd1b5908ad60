// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"yatube/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var (
	groupDefs = []struct {
		Title       string
		Slug        string
		Description string
	}{
		{"Technology", "technology", "Hardware, software and everything in between."},
		{"Books", "books", "What are you reading this week?"},
		{"Travel", "travel", "Trip reports and destination advice."},
		{"Cooking", "cooking", "Recipes, techniques and kitchen disasters."},
		{"Music", "music", "New releases, old favorites, live shows."},
		{"Photography", "photography", "Show off your best shots."},
		{"Fitness", "fitness", "Training logs and honest progress."},
		{"Cinema", "cinema", "Film discussion without spoiler tags."},
	}

	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew", "Betty",
		"Anthony", "Margaret", "Mark", "Sandra", "Steven", "Kimberly", "Paul", "Emily",
		"Andrew", "Donna", "Joshua", "Michelle", "Kevin", "Carol", "Brian", "Amanda",
		"George", "Melissa", "Edward", "Deborah", "Ryan", "Cynthia", "Jacob", "Kathleen",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	}

	adjectives = []string{
		"amazing", "incredible", "fascinating", "challenging", "excited", "happy", "proud",
		"grateful", "inspired", "motivated", "curious", "passionate", "creative", "simple",
		"beautiful", "elegant", "robust", "quiet", "intense", "focused", "thoughtful", "kind",
	}

	nouns = []string{
		"project", "community", "idea", "concept", "challenge", "opportunity", "goal",
		"journey", "experience", "lesson", "skill", "book", "trip", "recipe", "song",
		"photo", "morning", "evening", "weekend", "conversation", "habit", "hobby",
	}

	verbs = []string{
		"finished", "started", "discovered", "explored", "shared", "wrote", "read",
		"watched", "listened", "enjoyed", "loved", "improved", "tried", "learned",
		"planned", "cooked", "photographed", "visited", "remembered", "described",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	groups, err := createOrGetGroups(db)
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("%d groups available", len(groups))

	posts, err := createPosts(db, users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	comments, err := createComments(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("%d comments created", comments)

	follows, err := createFollows(db, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("%d follow edges created", follows)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, follows, posts, groups, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func generateRandomName(r *rand.Rand) (string, string) {
	first := firstNames[r.Intn(len(firstNames))]
	last := lastNames[r.Intn(len(lastNames))]
	return first, last
}

func generateUsername(r *rand.Rand, first, last string) string {
	formats := []string{"%s%s", "%s.%s", "%s_%s"}
	format := formats[r.Intn(len(formats))]
	return strings.ToLower(fmt.Sprintf(format, first, last))
}

func generateSentence(r *rand.Rand) string {
	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]
	verb := verbs[r.Intn(len(verbs))]

	templates := []string{
		"Just %s an %s %s.",
		"The %s %s was %s.",
		"I %s this %s %s!",
		"What an %s %s to %s.",
	}

	template := templates[r.Intn(len(templates))]
	return fmt.Sprintf(template, verb, adj, noun)
}

func generateParagraph(r *rand.Rand, sentences int) string {
	var sb strings.Builder
	for i := 0; i < sentences; i++ {
		sb.WriteString(generateSentence(r))
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include a couple of well-known accounts for manual testing
	if count >= 2 {
		for _, u := range []string{"leo", "test"} {
			user := models.User{
				Username: u,
				Email:    fmt.Sprintf("%s@example.com", u),
				Password: string(hashedPassword),
				Bio:      "One of the first accounts here.",
			}
			if err := db.Create(&user).Error; err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		first, last := generateRandomName(r)
		username := fmt.Sprintf("%s%d", generateUsername(r, first, last), i)

		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: string(hashedPassword),
			Bio:      generateSentence(r),
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createOrGetGroups(db *gorm.DB) ([]models.Group, error) {
	groups := make([]models.Group, 0, len(groupDefs))

	for _, def := range groupDefs {
		var group models.Group
		err := db.Where(models.Group{Slug: def.Slug}).
			Attrs(models.Group{Title: def.Title, Description: def.Description}).
			FirstOrCreate(&group).Error
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func createPosts(db *gorm.DB, users []models.User, groups []models.Group, count int) ([]models.Post, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]

		// Roughly two thirds of posts belong to a group
		var groupID *uint
		if len(groups) > 0 && r.Float32() < 0.66 {
			groupID = &groups[r.Intn(len(groups))].ID
		}

		post := models.Post{
			Text:     generateParagraph(r, r.Intn(6)+1),
			AuthorID: user.ID,
			GroupID:  groupID,
		}

		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	return posts, nil
}

func createComments(db *gorm.DB, users []models.User, posts []models.Post) (int, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, post := range posts {
		for i := 0; i < r.Intn(4); i++ {
			comment := models.Comment{
				PostID:   post.ID,
				AuthorID: users[r.Intn(len(users))].ID,
				Text:     generateSentence(r),
			}
			if err := db.Create(&comment).Error; err != nil {
				return created, err
			}
			created++
		}
	}

	return created, nil
}

func createFollows(db *gorm.DB, users []models.User) (int, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, user := range users {
		for i := 0; i < r.Intn(5); i++ {
			author := users[r.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			// ON CONFLICT DO NOTHING keeps repeated picks idempotent
			res := db.Exec(
				"INSERT INTO follows (user_id, author_id, created_at) VALUES (?, ?, NOW()) ON CONFLICT (user_id, author_id) DO NOTHING",
				user.ID, author.ID,
			)
			if res.Error != nil {
				return created, res.Error
			}
			created += int(res.RowsAffected)
		}
	}

	return created, nil
}

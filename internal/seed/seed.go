// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"barkbook/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded account gets, so demo logins
// are predictable.
const DefaultPassword = "Password123!"

// Seeder populates the database with fake users, dogs, posts, and likes.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes all seedable data. Order matters because of foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"likes", "posts", "dogs", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates n users, each with a dog profile.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Email:    fmt.Sprintf("%s%d@%s", gofakeit.Username(), i, gofakeit.DomainName()),
			Password: string(hashed),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}

		dog := &models.Dog{
			Name:    gofakeit.PetName(),
			Breed:   gofakeit.Dog(),
			Age:     rand.Intn(15),
			OwnerID: user.ID,
		}
		if err := s.db.Create(dog).Error; err != nil {
			return nil, fmt.Errorf("creating dog: %w", err)
		}

		user.Dog = dog
		users = append(users, user)
	}

	log.Printf("Created %d users with dogs", len(users))
	return users, nil
}

// SeedPosts creates n posts spread across the given users with realistic
// timestamps over the past maxDays days.
func (s *Seeder) SeedPosts(users []*models.User, n, maxDays int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to post as")
	}
	if maxDays <= 0 {
		maxDays = 30
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		createdAt := time.Now().
			Add(-time.Duration(rand.Intn(maxDays*24)) * time.Hour).
			Add(-time.Duration(rand.Intn(3600)) * time.Second)

		post := &models.Post{
			Content:   gofakeit.Sentence(8 + rand.Intn(12)),
			AuthorID:  author.ID,
			DogID:     author.Dog.ID,
			CreatedAt: createdAt,
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}

	log.Printf("Created %d posts", len(posts))
	return posts, nil
}

// SeedLikes sprinkles likes over the posts. Each user likes roughly the
// given fraction of the feed; the unique index keeps duplicates out.
func (s *Seeder) SeedLikes(users []*models.User, posts []*models.Post, fraction float64) error {
	if fraction <= 0 || fraction > 1 {
		fraction = 0.2
	}

	var total int
	for _, user := range users {
		for _, post := range posts {
			if rand.Float64() > fraction {
				continue
			}
			like := &models.Like{
				UserID: user.ID,
				PostID: post.ID,
			}
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("creating like: %w", err)
			}
			total++
		}
	}

	log.Printf("Created %d likes", total)
	return nil
}

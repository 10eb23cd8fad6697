// Seeds demo data. One-off: PG_DSN=... go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		log.Fatal("PG_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		log.Fatalf("pg connect: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx,
		`TRUNCATE comments, bookmarks, follows, projects, users RESTART IDENTITY CASCADE`,
	); err != nil {
		log.Fatalf("truncate: %v", err)
	}
	log.Print("cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	users := []struct {
		username, email, bio, location string
	}{
		{"john_dev", "john@example.com", "Full-stack developer passionate about React and Go", "San Francisco, CA"},
		{"sarah_ui", "sarah@example.com", "UI/UX Designer & Frontend Developer", "New York, NY"},
		{"mike_backend", "mike@example.com", "Backend engineer specializing in microservices", "Seattle, WA"},
	}
	userIDs := make([]int64, len(users))
	for i, u := range users {
		err := conn.QueryRow(ctx,
			`INSERT INTO users (username, email, password_hash, bio, location)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			u.username, u.email, string(hash), u.bio, u.location,
		).Scan(&userIDs[i])
		if err != nil {
			log.Fatalf("insert user %s: %v", u.username, err)
		}
	}
	log.Printf("created %d users (password: password123)", len(users))

	projects := []struct {
		author      int
		title, desc string
		techStack   []string
	}{
		{0, "E-Commerce Platform", "A modern e-commerce platform built with React, Go and PostgreSQL.",
			[]string{"React", "Go", "PostgreSQL", "Stripe", "Docker"}},
		{1, "Task Management App", "A collaborative task management application with real-time updates.",
			[]string{"Vue.js", "Express", "MongoDB", "Socket.io"}},
		{2, "Microservices API Gateway", "A scalable API gateway for microservices architecture.",
			[]string{"Go", "Docker", "Kubernetes", "Redis"}},
	}
	projectIDs := make([]int64, len(projects))
	for i, p := range projects {
		err := conn.QueryRow(ctx,
			`INSERT INTO projects (author_id, title, description, tech_stack)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			userIDs[p.author], p.title, p.desc, p.techStack,
		).Scan(&projectIDs[i])
		if err != nil {
			log.Fatalf("insert project %s: %v", p.title, err)
		}
	}
	log.Printf("created %d projects", len(projects))

	follows := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, f := range follows {
		if _, err := conn.Exec(ctx,
			`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)`,
			userIDs[f[0]], userIDs[f[1]],
		); err != nil {
			log.Fatalf("insert follow: %v", err)
		}
	}
	log.Printf("created %d follows", len(follows))

	bookmarks := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, b := range bookmarks {
		if _, err := conn.Exec(ctx,
			`INSERT INTO bookmarks (user_id, project_id) VALUES ($1, $2)`,
			userIDs[b[0]], projectIDs[b[1]],
		); err != nil {
			log.Fatalf("insert bookmark: %v", err)
		}
	}
	log.Printf("created %d bookmarks", len(bookmarks))

	comments := []struct {
		author, project int
		content         string
	}{
		{1, 0, "Amazing project! The UI is so clean and intuitive."},
		{2, 0, "Great work on the architecture. Very scalable approach."},
		{0, 1, "Love the attention to detail in the user experience."},
		{0, 2, "Impressive use of modern technologies. Well done!"},
	}
	for _, c := range comments {
		if _, err := conn.Exec(ctx,
			`INSERT INTO comments (author_id, project_id, content) VALUES ($1, $2, $3)`,
			userIDs[c.author], projectIDs[c.project], c.content,
		); err != nil {
			log.Fatalf("insert comment: %v", err)
		}
	}
	log.Printf("created %d comments", len(comments))

	log.Print("seeding completed")
}

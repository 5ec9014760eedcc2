// CLI tool to create a user with a bcrypt-hashed password and an optional
// starting profile. Blank answers leave the profile column NULL.
// Usage: go run ./cmd/create-user
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"lg/nutrichef-api/internal/nutrition"
)

// prompt prints a label and returns the trimmed line, or nil when blank.
func prompt(reader *bufio.Reader, label string) *string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return &line
}

func parseFloat(s *string) (*float64, error) {
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("expected a positive number, got %q", *s)
	}
	return &v, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	reader := bufio.NewReader(os.Stdin)

	username := prompt(reader, "Username: ")
	password := prompt(reader, "Password: ")
	if username == nil || password == nil {
		fmt.Fprintln(os.Stderr, "Username and password are required")
		os.Exit(1)
	}

	weight, err := parseFloat(prompt(reader, "Weight kg (optional): "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid weight: %v\n", err)
		os.Exit(1)
	}
	height, err := parseFloat(prompt(reader, "Height cm (optional): "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid height: %v\n", err)
		os.Exit(1)
	}
	var age *int
	if s := prompt(reader, "Age (optional): "); s != nil {
		v, err := strconv.Atoi(*s)
		if err != nil || v <= 0 {
			fmt.Fprintf(os.Stderr, "Invalid age: %q\n", *s)
			os.Exit(1)
		}
		age = &v
	}
	gender := prompt(reader, "Gender M/F/Other (optional): ")
	if gender != nil {
		g := nutrition.ParseGender(*gender).String()
		gender = &g
	}
	goal := prompt(reader, "Health goal (Lose Weight, Gain Muscle, Balanced; optional): ")

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	authToken := uuid.New().String()

	var userID int
	err = conn.QueryRow(context.Background(),
		`INSERT INTO users (username, password, auth_token, weight_kg, height_cm, age, gender, health_goals)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		*username, string(hash), authToken, weight, height, age, gender, goal,
	).Scan(&userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:         %d\n", userID)
	fmt.Printf("  Username:   %s\n", *username)
	fmt.Printf("  Auth Token: %s\n", authToken)
}

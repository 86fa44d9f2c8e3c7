package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/emrebaser94/dienstplan-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Anna", "Lukas", "Maria", "Jonas", "Lea", "Felix", "Laura", "Paul",
	"Sophie", "Max", "Julia", "Tim", "Clara", "Jan", "Mia", "Nico",
}

var commonLastNames = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer",
	"Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Richter",
}

var positions = []string{"Pfleger", "Betreuer", "Nachtwache", "Hauswirtschaft"}

func GenerateRandomEmployee() *domain.Employee {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]

	return &domain.Employee{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          strings.ToLower(firstName) + "." + usernamePart(lastName) + "@example.org",
		Phone:          fmt.Sprintf("+49 30 %07d", rand.Intn(10000000)),
		Position:       positions[rand.Intn(len(positions))],
		MaxWeeklyHours: float64(20 + rand.Intn(5)*5), // 20 to 40 in steps of 5
	}
}

// usernamePart lowercases a last name and strips the characters that do not
// belong in the local part of a mail address.
func usernamePart(lastName string) string {
	replacer := strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")
	return replacer.Replace(strings.ToLower(lastName))
}

func GenerateRandomUser(password string) (*domain.User, error) {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]
	username := strings.ToLower(firstName[:1]) + usernamePart(lastName) + fmt.Sprintf("%02d", rand.Intn(100))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleStaff
	if rand.Intn(4) == 0 {
		role = domain.RoleAdmin
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     firstName + " " + lastName,
		Email:        username + "@example.org",
		Role:         role,
	}, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

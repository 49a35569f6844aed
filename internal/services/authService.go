package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nishantj/orderdesk/internal/config"
	"github.com/nishantj/orderdesk/internal/db"
	"github.com/nishantj/orderdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT signs a token carrying the principal: email, role and the
// user id as subject. Tokens expire after 4 hours.
func GenerateJWT(email, role, subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"sub":   subjectID,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(4 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}

// RegisterUser creates a new user. Fails with ErrEmailExists when the email
// is already taken. The returned user carries the hash only in memory; the
// handler serializes the public fields.
func RegisterUser(email, password, role string) (models.User, error) {
	collection := db.GetCollection(config.DBName(), "users")

	var existing models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return models.User{}, ErrEmailExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, err
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(context.TODO(), user); err != nil {
		// Races with a concurrent registration land on the unique index.
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailExists
		}
		return models.User{}, err
	}
	return user, nil
}

// LoginUser authenticates a user and returns a signed token plus the
// public user fields. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func LoginUser(email, password string) (string, models.User, error) {
	collection := db.GetCollection(config.DBName(), "users")

	var user models.User
	err := collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(user.Email, user.Role, user.ID.Hex())
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}

package handlers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"playtube/database"
	"playtube/middleware"
	"playtube/models"
	"playtube/response"
)

// Register creates a user account. The avatar, when supplied as a
// multipart file, goes through the asset store like every other upload.
func Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	fullName := c.PostForm("fullName")
	password := c.PostForm("password")

	if username == "" || email == "" || password == "" {
		response.Fail(c, response.Invalid, "username, email and password are required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register hash error: %v", err)
		response.Fail(c, response.Internal, "failed to register")
		return
	}
	hashStr := string(hash)

	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: &hashStr,
		CreatedAt:    time.Now().Unix(),
	}

	if avatarFile, _, err := c.Request.FormFile("avatar"); err == nil {
		defer avatarFile.Close()
		asset, err := assetStore.Upload(ctx, avatarFile, "playtube/avatars", user.ID.Hex())
		if err != nil {
			log.Printf("Register avatar upload error: %v", err)
			response.Fail(c, response.Internal, "failed to upload avatar")
			return
		}
		user.Avatar = asset.URL
	}

	if _, err := database.Users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			response.Fail(c, response.Invalid, "username already taken")
			return
		}
		log.Printf("Register insert error: %v", err)
		response.Fail(c, response.Internal, "failed to register")
		return
	}

	user.PasswordHash = nil
	response.OK(c, http.StatusCreated, user, "user registered successfully")
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and issues a JWT carrying the user id.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.Invalid, "username and password are required", err.Error())
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"username": req.Username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		response.Fail(c, response.Unauthorized, "invalid credentials")
		return
	}
	if err != nil {
		log.Printf("Login lookup error: %v", err)
		response.Fail(c, response.Internal, "failed to log in")
		return
	}

	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)) != nil {
		response.Fail(c, response.Unauthorized, "invalid credentials")
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	claims := middleware.Claims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Printf("Login token error: %v", err)
		response.Fail(c, response.Internal, "failed to log in")
		return
	}

	user.PasswordHash = nil
	response.OK(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	}, "logged in successfully")
}

package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"fittrack-backend/database"
	"fittrack-backend/helpers"
	"fittrack-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")
var validate = validator.New()

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword))
	return err == nil
}

func SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var user models.User

		if err := c.BindJSON(&user); err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid input"))
			return
		}

		if validationErr := validate.Struct(user); validationErr != nil {
			helpers.RespondError(c, helpers.NewValidationError(validationErr.Error()))
			return
		}

		count, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		if count > 0 {
			helpers.RespondError(c, helpers.NewConflictError("Email is already in use"))
			return
		}

		password := HashPassword(*user.Password)
		user.Password = &password

		user.CreatedAt = time.Now()
		user.UpdatedAt = time.Now()
		user.ID = primitive.NewObjectID()
		user.UserID = user.ID.Hex()

		token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.UserID)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		user.Token = &token
		user.RefreshToken = &refreshToken

		if _, insertErr := userCollection.InsertOne(ctx, user); insertErr != nil {
			log.WithError(insertErr).Error("could not create user")
			helpers.RespondError(c, insertErr)
			return
		}

		user.Password = nil
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

func SignIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var credentials struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.BindJSON(&credentials); err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid input"))
			return
		}

		var foundUser models.User
		err := userCollection.FindOne(ctx, bson.M{"email": credentials.Email}).Decode(&foundUser)
		if err == mongo.ErrNoDocuments {
			helpers.RespondError(c, helpers.NewNotFoundError("User not found"))
			return
		}
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		if !VerifyPassword(credentials.Password, *foundUser.Password) {
			helpers.RespondError(c, helpers.NewForbiddenError("Incorrect password"))
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(*foundUser.Email, *foundUser.Name, foundUser.UserID)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		if err := helpers.UpdateAllTokens(token, refreshToken, foundUser.UserID); err != nil {
			helpers.RespondError(c, err)
			return
		}

		foundUser.Password = nil
		foundUser.Token = &token
		foundUser.RefreshToken = &refreshToken
		c.JSON(http.StatusOK, gin.H{"token": token, "user": foundUser})
	}
}

func RefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid input"))
			return
		}

		claims, msg := helpers.ValidateToken(req.RefreshToken)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"status":  http.StatusUnauthorized,
				"message": msg,
			})
			return
		}

		var user models.User
		err := userCollection.FindOne(ctx, bson.M{"user_id": claims.UserID}).Decode(&user)
		if err != nil {
			helpers.RespondError(c, helpers.NewNotFoundError("User not found"))
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.UserID)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		if err := helpers.UpdateAllTokens(token, refreshToken, user.UserID); err != nil {
			helpers.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "refresh_token": refreshToken})
	}
}

func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")

		var user models.User
		err := userCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
		if err != nil {
			helpers.RespondError(c, helpers.NewNotFoundError("User not found"))
			return
		}

		user.Password = nil
		c.JSON(http.StatusOK, user)
	}
}

func avatarBucket() string {
	bucket := os.Getenv("AVATAR_BUCKET")
	if bucket == "" {
		bucket = "fittrack"
	}
	return bucket
}

func UploadProfileImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		userID := c.GetString("uid")

		file, header, err := c.Request.FormFile("image")
		if err != nil {
			helpers.RespondError(c, helpers.NewValidationError("Invalid image upload"))
			return
		}
		defer file.Close()

		parts := strings.Split(header.Filename, ".")
		extension := parts[len(parts)-1]
		key := fmt.Sprintf("avatars/%s.%s", userID, extension)

		bucket := avatarBucket()
		if err := helpers.UploadFileToS3(ctx, helpers.GetS3Client(), bucket, key, file); err != nil {
			log.WithError(err).Error("could not upload profile image")
			helpers.RespondError(c, helpers.NewUpstreamError("Failed to upload profile image"))
			return
		}

		imageURL := fmt.Sprintf("https://%s.nyc3.cdn.digitaloceanspaces.com/%s", bucket, key)

		update := bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "img", Value: imageURL},
				{Key: "img_key", Value: key},
				{Key: "updated_at", Value: time.Now()},
			}},
		}
		if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
			helpers.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile image uploaded successfully", "img": imageURL})
	}
}

func GetProfileImageURL() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("uid")

		var user models.User
		err := userCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
		if err != nil {
			helpers.RespondError(c, helpers.NewNotFoundError("User not found"))
			return
		}
		if user.ImgKey == "" {
			helpers.RespondError(c, helpers.NewNotFoundError("No profile image uploaded"))
			return
		}

		signedURL, err := helpers.PresignDownloadURL(avatarBucket(), user.ImgKey, 15*time.Minute)
		if err != nil {
			helpers.RespondError(c, helpers.NewUpstreamError("Failed to generate signed URL"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"download_url": signedURL})
	}
}

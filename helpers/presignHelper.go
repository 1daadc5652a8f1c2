package helpers

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	log "github.com/sirupsen/logrus"
)

var s3Session *session.Session

func init() {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(os.Getenv("SPACES_KEY"), os.Getenv("SPACES_SECRET"), ""),
		Endpoint:    aws.String("https://nyc3.digitaloceanspaces.com"),
		Region:      aws.String("us-east-1"),
	})
	if err != nil {
		log.Fatalf("Error creating S3 session: %v", err)
	}
	s3Session = sess
}

func GetS3Session() *session.Session {
	return s3Session
}

// PresignDownloadURL signs a time-limited GET for a stored object.
func PresignDownloadURL(bucket string, key string, expiry time.Duration) (string, error) {
	svc := s3.New(s3Session)
	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return req.Presign(expiry)
}

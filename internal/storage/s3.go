// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// BucketOptions configures a Bucket.
type BucketOptions struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix is prepended to every key, e.g. "site/v2".
	Prefix string
	// PublicURL is an optional CDN or custom-domain URL for the bucket.
	PublicURL string
}

// Bucket publishes exported files to one bucket of an S3-compatible store.
// It uses path-style addressing, which CEPH and Hetzner require.
type Bucket struct {
	s3        *s3.Client
	bucket    string
	prefix    string
	endpoint  string
	publicURL string
}

// NewBucket creates a Bucket. Endpoint, credentials and bucket are required.
func NewBucket(opts BucketOptions) (*Bucket, error) {
	if opts.Endpoint == "" || opts.AccessKey == "" || opts.SecretKey == "" || opts.Bucket == "" {
		return nil, fmt.Errorf("s3 endpoint, credentials and bucket are required")
	}

	endpoint := strings.TrimRight(opts.Endpoint, "/")

	client := s3.New(s3.Options{
		Region:       opts.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		UsePathStyle: true,
	})

	return &Bucket{
		s3:        client,
		bucket:    opts.Bucket,
		prefix:    strings.Trim(opts.Prefix, "/"),
		endpoint:  endpoint,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
	}, nil
}

// Put uploads data under the prefixed key with a public-read ACL so the
// exported site can be served straight from the bucket.
func (b *Bucket) Put(ctx context.Context, key, contentType string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	objectKey := b.objectKey(key)

	_, err := b.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", b.bucket, objectKey, err)
	}
	return nil
}

// Location returns the public URL for key. Uses the configured public URL
// if set, otherwise builds a path-style URL.
func (b *Bucket) Location(key string) string {
	objectKey := b.objectKey(key)
	if b.publicURL != "" {
		return b.publicURL + "/" + objectKey
	}
	return b.endpoint + "/" + b.bucket + "/" + objectKey
}

func (b *Bucket) objectKey(key string) string {
	if b.prefix == "" {
		return key
	}
	return path.Join(b.prefix, key)
}

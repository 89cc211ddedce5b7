// Package gmail implements the mail gateway on top of the Gmail API.
package gmail

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailv1 "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	// maxPageSize is the per-page bound used when listing message ids.
	maxPageSize = 50

	// maxSnippetLen truncates snippets stored on audit records.
	maxSnippetLen = 200
)

// TokenStore resolves the stored Gmail refresh token for a user.
type TokenStore interface {
	RefreshTokenForUser(userID string) (string, error)
}

// Service wraps Gmail list/get/mutate calls behind the narrow gateway
// contract the planner and executor consume.
type Service struct {
	clientID     string
	clientSecret string
	tokens       TokenStore
}

func NewService(clientID, clientSecret string, tokens TokenStore) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokens:       tokens,
	}
}

// GetAccessToken exchanges the user's stored refresh token for a fresh
// access token. A missing or revoked token is a hard failure.
func (s *Service) GetAccessToken(ctx context.Context, userID string) (string, error) {
	refreshToken, err := s.tokens.RefreshTokenForUser(userID)
	if err != nil {
		return "", fmt.Errorf("no Google token found for user: %w", err)
	}

	conf := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}
	token, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("unable to exchange refresh token: %w", err)
	}
	return token.AccessToken, nil
}

func (s *Service) client(ctx context.Context, accessToken string) (*gmailv1.Service, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	srv, err := gmailv1.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}
	return srv, nil
}

// ListMessageIDs returns at most maxResults message ids matching the query,
// in Gmail's native (newest first) order. Pagination stays internal; no
// page ever requests more than the remaining budget.
func (s *Service) ListMessageIDs(ctx context.Context, accessToken, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		return []string{}, nil
	}

	srv, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return collectMessageIDs(func(pageToken string, pageSize int) ([]string, string, error) {
		call := srv.Users.Messages.List("me").Q(query).MaxResults(int64(pageSize)).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, "", fmt.Errorf("unable to list messages: %w", err)
		}

		ids := make([]string, 0, len(resp.Messages))
		for _, msg := range resp.Messages {
			ids = append(ids, msg.Id)
		}
		return ids, resp.NextPageToken, nil
	}, maxResults)
}

// collectMessageIDs drains pages from fetch until maxResults ids are
// collected or the listing ends. An empty page terminates the loop even
// when the provider hands back another token, so the loop never depends on
// the provider for progress.
func collectMessageIDs(fetch func(pageToken string, pageSize int) ([]string, string, error), maxResults int) ([]string, error) {
	ids := make([]string, 0, maxResults)
	pageToken := ""
	for len(ids) < maxResults {
		pageSize := maxResults - len(ids)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		page, next, err := fetch(pageToken, pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		for _, id := range page {
			ids = append(ids, id)
			if len(ids) == maxResults {
				return ids, nil
			}
		}

		pageToken = next
		if pageToken == "" {
			break
		}
	}
	return ids, nil
}

// GetMetadata fetches the Subject/From/Date headers of one message.
func (s *Service) GetMetadata(ctx context.Context, accessToken, messageID string) (subject, from, date string, err error) {
	subject, from, date, _, err = s.getMetadata(ctx, accessToken, messageID)
	return subject, from, date, err
}

// GetMetadataWithSnippet fetches display headers plus a snippet truncated
// to 200 characters.
func (s *Service) GetMetadataWithSnippet(ctx context.Context, accessToken, messageID string) (subject, from, date, snippet string, err error) {
	return s.getMetadata(ctx, accessToken, messageID)
}

func (s *Service) getMetadata(ctx context.Context, accessToken, messageID string) (subject, from, date, snippet string, err error) {
	srv, err := s.client(ctx, accessToken)
	if err != nil {
		return "", "", "", "", err
	}

	msg, err := srv.Users.Messages.Get("me", messageID).
		Format("metadata").
		MetadataHeaders("Subject", "From", "Date").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", "", "", fmt.Errorf("unable to get message %s: %w", messageID, err)
	}

	headers := headerMap(msg.Payload)
	subject = headers["subject"]
	if subject == "" {
		subject = "(No subject)"
	}

	snippet = msg.Snippet
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen]
	}
	return subject, headers["from"], headers["date"], snippet, nil
}

// Trash moves all ids into the trashed state with a single batched call.
func (s *Service) Trash(ctx context.Context, accessToken string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	srv, err := s.client(ctx, accessToken)
	if err != nil {
		return err
	}

	err = srv.Users.Messages.BatchModify("me", &gmailv1.BatchModifyMessagesRequest{
		Ids:         messageIDs,
		AddLabelIds: []string{"TRASH"},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to move messages to trash: %w", err)
	}
	return nil
}

func headerMap(payload *gmailv1.MessagePart) map[string]string {
	headers := make(map[string]string)
	if payload == nil {
		return headers
	}
	for _, h := range payload.Headers {
		headers[strings.ToLower(h.Name)] = h.Value
	}
	return headers
}

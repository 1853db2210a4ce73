package publish

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"motivation-pipeline/config"
	"motivation-pipeline/types"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMIMEType = "application/vnd.google-apps.folder"

// Publisher uploads finished videos and their metadata side-files to a
// numbered Drive folder, then records the run in a spreadsheet and pings a
// chat webhook. Only the Drive upload can fail the publish stage; the
// sheet append and the webhook are each best-effort.
type Publisher struct {
	cfg *config.Config
}

// New creates a Publisher.
func New(cfg *config.Config) *Publisher {
	return &Publisher{cfg: cfg}
}

// Run uploads the video plus title.txt, description.txt, tags.txt and the
// optional thumbnail into a fresh Video_NNN folder and returns the folder
// name.
func (p *Publisher) Run(ctx context.Context, run *types.Run, md *types.VideoMetadata) (string, error) {
	log.Println("[publish] Authenticating with Google Drive...")

	ts, err := p.tokenSource(ctx, drive.DriveScope)
	if err != nil {
		return "", err
	}
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return "", fmt.Errorf("drive service: %w", err)
	}

	folderName := fmt.Sprintf("Video_%03d", p.nextFolderNumber(ctx, svc))
	folderID, err := p.createFolder(ctx, svc, folderName)
	if err != nil {
		return "", fmt.Errorf("create folder %s: %w", folderName, err)
	}
	log.Printf("[publish] Created folder: %s", folderName)

	if err := p.uploadFile(ctx, svc, run.VideoPath, folderID); err != nil {
		// Metadata still goes up so the folder documents the failed run.
		log.Printf("[publish] ⚠️  Video upload failed, continuing with metadata: %v", err)
	}

	p.uploadText(ctx, svc, md.Title, "title.txt", folderID)
	p.uploadText(ctx, svc, md.Description, "description.txt", folderID)
	p.uploadText(ctx, svc, strings.Join(md.Tags, ","), "tags.txt", folderID)

	if md.ThumbnailPath != "" {
		if _, err := os.Stat(md.ThumbnailPath); err == nil {
			if err := p.uploadFile(ctx, svc, md.ThumbnailPath, folderID); err != nil {
				log.Printf("[publish] ⚠️  Thumbnail upload failed: %v", err)
			}
		}
	}

	if err := p.AppendRow(ctx, run, md, folderName); err != nil {
		log.Printf("[publish] ⚠️  Sheet append failed: %v", err)
	}
	if err := Notify(ctx, fmt.Sprintf("🎬 New video published: %q → %s", md.Title, folderName)); err != nil {
		log.Printf("[publish] ⚠️  Chat notification failed: %v", err)
	}

	log.Printf("[publish] ✅ Published to folder: %s", folderName)
	return folderName, nil
}

// tokenSource builds a service-account token source from the configured
// credentials file.
func (p *Publisher) tokenSource(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(p.cfg.Publish.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return conf.TokenSource(ctx), nil
}

// NextFolderNumber returns one past the highest numeric suffix among
// sibling folder names shaped like X_NNN. No numbered siblings means 1.
func NextFolderNumber(names []string) int {
	highest := 0
	for _, name := range names {
		parts := strings.Split(name, "_")
		if len(parts) < 2 {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

func (p *Publisher) nextFolderNumber(ctx context.Context, svc *drive.Service) int {
	query := fmt.Sprintf("'%s' in parents and mimeType='%s'", p.cfg.Publish.ParentFolderID, folderMIMEType)
	res, err := svc.Files.List().Q(query).Fields("files(name)").Context(ctx).Do()
	if err != nil {
		log.Printf("[publish] ⚠️  Listing sibling folders failed, falling back to timestamp number: %v", err)
		return int(time.Now().Unix()) % 1000
	}

	names := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		names = append(names, f.Name)
	}
	return NextFolderNumber(names)
}

func (p *Publisher) createFolder(ctx context.Context, svc *drive.Service, name string) (string, error) {
	folder := &drive.File{
		Name:     name,
		MimeType: folderMIMEType,
		Parents:  []string{p.cfg.Publish.ParentFolderID},
	}
	created, err := svc.Files.Create(folder).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (p *Publisher) uploadFile(ctx context.Context, svc *drive.Service, path, folderID string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	meta := &drive.File{Name: filepath.Base(path), Parents: []string{folderID}}
	_, err = svc.Files.Create(meta).Media(f).Fields("id").Context(ctx).Do()
	if err != nil {
		return err
	}
	log.Printf("[publish] Uploaded: %s", meta.Name)
	return nil
}

func (p *Publisher) uploadText(ctx context.Context, svc *drive.Service, content, name, folderID string) {
	meta := &drive.File{Name: name, Parents: []string{folderID}}
	_, err := svc.Files.Create(meta).Media(strings.NewReader(content)).Fields("id").Context(ctx).Do()
	if err != nil {
		log.Printf("[publish] ⚠️  Uploading %s failed: %v", name, err)
		return
	}
	log.Printf("[publish] Uploaded: %s", name)
}

package bot

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"betcheck/service"
)

// handleMessage picks up image attachments and runs them through the slip
// analysis pipeline, editing a progress message as the stages complete.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	attachment := firstImageAttachment(m.Attachments)
	if attachment == nil {
		return
	}

	progress, err := s.ChannelMessageSend(m.ChannelID, "🔍 Sto analizzando la schedina...")
	if err != nil {
		log.Errorf("Error sending progress message: %v", err)
		return
	}
	edit := func(content string) {
		if _, err := s.ChannelMessageEdit(m.ChannelID, progress.ID, content); err != nil {
			log.Errorf("Error editing progress message: %v", err)
		}
	}

	ctx := context.Background()

	image, err := downloadAttachment(ctx, attachment.URL)
	if err != nil {
		log.Errorf("Error downloading attachment: %v", err)
		edit("❌ Non sono riuscito a scaricare l'immagine. Riprova.")
		return
	}

	draft, err := b.extractor.Extract(ctx, image)
	if err != nil {
		if errors.Is(err, service.ErrExtraction) {
			edit(FormatExtractionFailure())
		} else {
			log.Errorf("Unexpected extraction error: %v", err)
			edit("❌ Errore inatteso durante l'analisi. Riprova.")
		}
		return
	}

	edit("✅ Schedina letta. 🔍 Verifico il risultato...")

	verdict := b.resolver.Resolve(ctx, draft)
	record, err := b.ledger.Append(ctx, draft, verdict)
	if err != nil {
		log.Errorf("Error appending to ledger: %v", err)
		edit("❌ Analisi completata ma non sono riuscito a salvare il risultato.")
		return
	}

	edit(FormatVerdict(record))
}

func firstImageAttachment(attachments []*discordgo.MessageAttachment) *discordgo.MessageAttachment {
	for _, a := range attachments {
		if strings.HasPrefix(a.ContentType, "image/") {
			return a
		}
	}
	return nil
}

func downloadAttachment(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("attachment download failed: " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}

package chat

import (
	"context"

	"github.com/hqzhou/webchat/internal/ai"
)

// Service turns a single prompt into a stream of cleaned reply chunks.
type Service struct {
	provider ai.Provider
}

func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// DefaultPrompt is used when the client sends no prompt at all.
const DefaultPrompt = "Hello"

// AskStream sends the prompt as a single user message and relays the
// provider's reply chunk by chunk, cleaned for display. Both returned
// channels are closed when streaming ends. Providers without streaming
// support are called blocking and their whole reply is emitted as one chunk.
func (s *Service) AskStream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	messages := []ai.Message{{Role: "user", Content: prompt}}

	sp, ok := s.provider.(ai.StreamProvider)
	if !ok {
		return s.askBlocking(ctx, messages)
	}

	outChunks := make(chan string, 16)
	outErrs := make(chan error, 1)

	go func() {
		defer close(outChunks)
		defer close(outErrs)

		pChunks, pErrs := sp.StreamChat(ctx, messages)

		for c := range pChunks {
			cleaned, keep := CleanForRelay(c)
			if !keep {
				continue
			}
			select {
			case outChunks <- cleaned:
			case <-ctx.Done():
				outErrs <- ctx.Err()
				return
			}
		}

		// provider error (if any)
		select {
		case err := <-pErrs:
			if err != nil {
				outErrs <- err
			}
		default:
			// no error sent
		}
	}()

	return outChunks, outErrs
}

func (s *Service) askBlocking(ctx context.Context, messages []ai.Message) (<-chan string, <-chan error) {
	outChunks := make(chan string, 1)
	outErrs := make(chan error, 1)

	go func() {
		defer close(outChunks)
		defer close(outErrs)

		reply, err := s.provider.Chat(ctx, messages)
		if err != nil {
			outErrs <- err
			return
		}
		if cleaned, keep := CleanForRelay(reply); keep {
			outChunks <- cleaned
		}
	}()

	return outChunks, outErrs
}

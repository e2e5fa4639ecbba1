package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// DefaultCount is the number of passwords generated when a batch
// request omits count.
const DefaultCount = 1

// GeneratorService normalizes generation requests and invokes the core
// generator.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a GeneratorService around the given
// generator.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := normalizeOptions(req)

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Success:  true,
		Password: password,
		Length:   len(password),
		Options:  settingsFromOptions(opts),
	}, nil
}

// GenerateBatch produces count passwords based on the given request.
func (s *GeneratorService) GenerateBatch(req model.BatchGenerateRequest) (model.BatchGenerateResponse, error) {
	opts := normalizeOptions(req.GenerateRequest)

	count := req.Count
	if count == 0 {
		count = DefaultCount
	}

	passwords, err := s.gen.GenerateMany(count, opts)
	if err != nil {
		return model.BatchGenerateResponse{}, err
	}

	return model.BatchGenerateResponse{
		Success:   true,
		Passwords: passwords,
		Count:     len(passwords),
		Options:   settingsFromOptions(opts),
	}, nil
}

// normalizeOptions applies the documented defaults to any field the
// client left unset.
func normalizeOptions(req model.GenerateRequest) crypto.Options {
	opts := crypto.DefaultOptions()
	if req.Length != 0 {
		opts.Length = req.Length
	}
	opts.Uppercase = req.Uppercase.Or(opts.Uppercase)
	opts.Lowercase = req.Lowercase.Or(opts.Lowercase)
	opts.Numbers = req.Numbers.Or(opts.Numbers)
	opts.Symbols = req.Symbols.Or(opts.Symbols)
	opts.ExcludeAmbiguous = req.ExcludeAmbiguous.Or(opts.ExcludeAmbiguous)
	opts.ExcludeChars = req.ExcludeChars
	opts.RequireEach = req.RequireEach.Or(opts.RequireEach)
	return opts
}

// settingsFromOptions converts normalized options into the response
// echo form.
func settingsFromOptions(opts crypto.Options) model.GeneratorSettings {
	return model.GeneratorSettings{
		Length:           opts.Length,
		Uppercase:        opts.Uppercase,
		Lowercase:        opts.Lowercase,
		Numbers:          opts.Numbers,
		Symbols:          opts.Symbols,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
		ExcludeChars:     opts.ExcludeChars,
		RequireEach:      opts.RequireEach,
	}
}

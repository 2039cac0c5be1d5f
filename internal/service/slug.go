package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	defaultSlugAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"
	defaultSlugLength     = 8
	defaultSlugMaxRetries = 5
)

// SlugGenerator порождает публичные идентификаторы категорий.
// Алфавит, длина и бюджет повторов настраиваются, чтобы тесты могли
// подставить детерминированный или заведомо коллизионный вариант.
type SlugGenerator struct {
	Alphabet   string
	Length     int
	MaxRetries int
}

// NewSlugGenerator возвращает генератор с настройками по умолчанию.
func NewSlugGenerator() SlugGenerator {
	return SlugGenerator{
		Alphabet:   defaultSlugAlphabet,
		Length:     defaultSlugLength,
		MaxRetries: defaultSlugMaxRetries,
	}
}

// random выдаёт одну случайную строку из алфавита генератора.
func (g SlugGenerator) random() (string, error) {
	letterCount := big.NewInt(int64(len(g.Alphabet)))
	b := make([]byte, g.Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, letterCount)
		if err != nil {
			return "", err
		}
		b[i] = g.Alphabet[n.Int64()]
	}
	return string(b), nil
}

// Generate подбирает slug, свободный по данным exists, повторяя при коллизии.
// Исчерпание бюджета повторов отдаёт ErrSlugConflict.
func (g SlugGenerator) Generate(ctx context.Context, exists func(ctx context.Context, slug string) (bool, error)) (string, error) {
	for i := 0; i < g.MaxRetries; i++ {
		slug, err := g.random()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
	}
	return "", fmt.Errorf("%w: no free slug after %d attempts", ErrSlugConflict, g.MaxRetries)
}

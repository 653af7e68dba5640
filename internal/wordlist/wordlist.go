package wordlist

import (
	"sync"

	bip39 "github.com/vcvvvc/go-wallet-sdk/crypto/go-bip39"
)

// Size is the number of entries every BIP39 vocabulary holds.
const Size = 2048

// Language names a BIP39 vocabulary.
type Language string

// English is the only vocabulary the decoder ships with.
const English Language = "english"

// Index maps words of one vocabulary to their 11-bit rank. It is immutable after
// construction and safe to share between goroutines without locking.
type Index struct {
	lang  Language
	words []string
	pos   map[string]uint16
}

var (
	englishOnce  sync.Once
	englishIndex *Index
)

// Why(中文): 词表只在首次使用时构建一次，之后只读共享，避免每个 worker 各自复制 2048 项映射。
// Why(English): The table is built once on first use and then shared read-only across workers.
func EnglishIndex() *Index {
	englishOnce.Do(func() {
		src := bip39.GetWordList()
		words := make([]string, len(src))
		copy(words, src)
		englishIndex = newIndex(English, words)
	})
	return englishIndex
}

func newIndex(lang Language, words []string) *Index {
	pos := make(map[string]uint16, len(words))
	for i, w := range words {
		pos[w] = uint16(i)
	}
	return &Index{lang: lang, words: words, pos: pos}
}

// For returns the index for lang, or false when the language is not supported.
func For(lang Language) (*Index, bool) {
	switch lang {
	case English:
		return EnglishIndex(), true
	default:
		return nil, false
	}
}

// Supported lists every language For accepts, in a stable order.
func Supported() []Language {
	return []Language{English}
}

// Language returns the vocabulary this index was built from.
func (x *Index) Language() Language { return x.lang }

// Lookup returns the rank of word, or false if the word is not in the vocabulary.
func (x *Index) Lookup(word string) (uint16, bool) {
	i, ok := x.pos[word]
	return i, ok
}

// WordCount returns the vocabulary size, always Size for a well-formed list.
func (x *Index) WordCount() int { return len(x.words) }

// Word returns the word at rank i. It panics if i is out of range.
func (x *Index) Word(i uint16) string { return x.words[i] }

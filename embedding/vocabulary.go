package embedding

import "sort"

// Vocabulary holds the words seen at least minCount times in the corpus.
// Ids are assigned by descending frequency, ties broken lexically.
type Vocabulary struct {
	words  []string
	counts []int
	index  map[string]int
}

func BuildVocabulary(corpus [][]string, minCount int) Vocabulary {
	freq := make(map[string]int)
	for _, doc := range corpus {
		for _, w := range doc {
			freq[w]++
		}
	}

	words := make([]string, 0, len(freq))
	for w, c := range freq {
		if c >= minCount {
			words = append(words, w)
		}
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	v := Vocabulary{
		words:  words,
		counts: make([]int, len(words)),
		index:  make(map[string]int, len(words)),
	}
	for i, w := range words {
		v.counts[i] = freq[w]
		v.index[w] = i
	}
	return v
}

func (v Vocabulary) Len() int {
	return len(v.words)
}

func (v Vocabulary) Index(word string) (int, bool) {
	i, ok := v.index[word]
	return i, ok
}

func (v Vocabulary) Count(i int) int {
	return v.counts[i]
}

func (v Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}

// encode maps a document to vocabulary ids, dropping unknown words.
func (v Vocabulary) encode(doc []string) []int {
	ids := make([]int, 0, len(doc))
	for _, w := range doc {
		if i, ok := v.index[w]; ok {
			ids = append(ids, i)
		}
	}
	return ids
}

package models

// ===== CATEGORIZE =====

// Item is a draggable entry of a categorize question. ContainerID is nil
// while the item sits in the unassigned pool.
type Item struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	ContainerID *string `json:"containerId"`
}

// Container is a named bucket items can be assigned into.
type Container struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CategorizeContent struct {
	Items      []Item      `json:"items"`
	Containers []Container `json:"containers"`
}

func (*CategorizeContent) QuestionType() QuestionType { return QuestionCategorize }
func (*CategorizeContent) sealedContent()             {}

func (c *CategorizeContent) Clone() Content {
	cp := &CategorizeContent{
		Items:      make([]Item, len(c.Items)),
		Containers: make([]Container, len(c.Containers)),
	}
	for i, item := range c.Items {
		cp.Items[i] = item
		if item.ContainerID != nil {
			id := *item.ContainerID
			cp.Items[i].ContainerID = &id
		}
	}
	copy(cp.Containers, c.Containers)
	return cp
}

// HasContainer reports whether the given container id exists.
func (c *CategorizeContent) HasContainer(id string) bool {
	for _, container := range c.Containers {
		if container.ID == id {
			return true
		}
	}
	return false
}

// ===== CLOZE =====

// Blank marks the half-open range [Start, End) of the sentence whose text
// equals Word. Ranges of distinct blanks never overlap.
type Blank struct {
	ID    string `json:"id"`
	Word  string `json:"word"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type ClozeContent struct {
	Sentence string   `json:"sentence"`
	Blanks   []Blank  `json:"blanks"`
	Options  []string `json:"options"`
}

func (*ClozeContent) QuestionType() QuestionType { return QuestionCloze }
func (*ClozeContent) sealedContent()             {}

func (c *ClozeContent) Clone() Content {
	cp := &ClozeContent{
		Sentence: c.Sentence,
		Blanks:   make([]Blank, len(c.Blanks)),
		Options:  make([]string, len(c.Options)),
	}
	copy(cp.Blanks, c.Blanks)
	copy(cp.Options, c.Options)
	return cp
}

// HasOption reports whether the word is part of the option pool.
func (c *ClozeContent) HasOption(word string) bool {
	for _, option := range c.Options {
		if option == word {
			return true
		}
	}
	return false
}

// BlankByID returns the blank with the given id, or nil.
func (c *ClozeContent) BlankByID(id string) *Blank {
	for i := range c.Blanks {
		if c.Blanks[i].ID == id {
			return &c.Blanks[i]
		}
	}
	return nil
}

// ===== COMPREHENSION =====

// SubQuestion is one multiple-choice question under a comprehension passage.
// Answer holds the author's correct option index; it is never written by a
// respondent session.
type SubQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  *int     `json:"answer"`
}

type ComprehensionContent struct {
	Passage   string        `json:"passage"`
	Questions []SubQuestion `json:"questions"`
}

func (*ComprehensionContent) QuestionType() QuestionType { return QuestionComprehension }
func (*ComprehensionContent) sealedContent()             {}

func (c *ComprehensionContent) Clone() Content {
	cp := &ComprehensionContent{
		Passage:   c.Passage,
		Questions: make([]SubQuestion, len(c.Questions)),
	}
	for i, sq := range c.Questions {
		cp.Questions[i] = SubQuestion{
			Text:    sq.Text,
			Options: append([]string(nil), sq.Options...),
		}
		if sq.Answer != nil {
			answer := *sq.Answer
			cp.Questions[i].Answer = &answer
		}
	}
	return cp
}

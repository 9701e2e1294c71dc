package authoring

import (
	"strings"

	"lms/dto"
)

const newQuestionOptions = 4

// quizDraft holds the quiz questions of a module draft.
type quizDraft struct {
	questions []dto.QuizQuestion
}

func (q *quizDraft) question(i int) (*dto.QuizQuestion, error) {
	if i < 0 || i >= len(q.questions) {
		return nil, ErrIndexOutOfRange
	}
	return &q.questions[i], nil
}

func (q *quizDraft) add() int {
	q.questions = append(q.questions, dto.QuizQuestion{Options: make([]string, newQuestionOptions)})
	return len(q.questions) - 1
}

func (q *quizDraft) remove(i int) error {
	if _, err := q.question(i); err != nil {
		return err
	}
	q.questions = append(q.questions[:i], q.questions[i+1:]...)
	return nil
}

func (q *quizDraft) setText(i int, text string) error {
	qq, err := q.question(i)
	if err != nil {
		return err
	}
	qq.Question = text
	return nil
}

func (q *quizDraft) setOption(i, j int, text string) error {
	qq, err := q.question(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(qq.Options) {
		return ErrIndexOutOfRange
	}
	qq.Options[j] = text
	clearOrphanedAnswer(qq)
	return nil
}

func (q *quizDraft) addOption(i int) error {
	qq, err := q.question(i)
	if err != nil {
		return err
	}
	qq.Options = append(qq.Options, "")
	return nil
}

func (q *quizDraft) removeOption(i, j int) error {
	qq, err := q.question(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(qq.Options) {
		return ErrIndexOutOfRange
	}
	if len(qq.Options) <= 2 {
		return ErrMinOptions
	}
	qq.Options = append(qq.Options[:j], qq.Options[j+1:]...)
	clearOrphanedAnswer(qq)
	return nil
}

// setCorrect records option as the answer; it must match a non-blank option
// exactly. An empty option clears the answer.
func (q *quizDraft) setCorrect(i int, option string) error {
	qq, err := q.question(i)
	if err != nil {
		return err
	}
	if option == "" {
		qq.CorrectAnswer = ""
		return nil
	}
	if !containsOption(nonBlank(qq.Options), option) {
		return ErrUnknownOption
	}
	qq.CorrectAnswer = option
	return nil
}

func (q *quizDraft) snapshot() []dto.QuizQuestion {
	out := make([]dto.QuizQuestion, len(q.questions))
	for i, qq := range q.questions {
		out[i] = qq
		out[i].Options = append([]string(nil), qq.Options...)
	}
	return out
}

// payload drops blank options, preserving order. An empty quiz still
// produces a non-nil question slice.
func (q *quizDraft) payload() *dto.Quiz {
	quiz := &dto.Quiz{Questions: make([]dto.QuizQuestion, 0, len(q.questions))}
	for _, qq := range q.questions {
		quiz.Questions = append(quiz.Questions, dto.QuizQuestion{
			Question:      qq.Question,
			Options:       nonBlank(qq.Options),
			CorrectAnswer: qq.CorrectAnswer,
		})
	}
	return quiz
}

// clearOrphanedAnswer clears the correct answer once no option matches it.
func clearOrphanedAnswer(qq *dto.QuizQuestion) {
	if qq.CorrectAnswer != "" && !containsOption(qq.Options, qq.CorrectAnswer) {
		qq.CorrectAnswer = ""
	}
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

package authoring

import "lms/dto"

type surveyDraft struct {
	questions []dto.SurveyQuestion
}

func (s *surveyDraft) question(i int) (*dto.SurveyQuestion, error) {
	if i < 0 || i >= len(s.questions) {
		return nil, ErrIndexOutOfRange
	}
	return &s.questions[i], nil
}

func (s *surveyDraft) add() int {
	s.questions = append(s.questions, dto.SurveyQuestion{Type: dto.SurveyText})
	return len(s.questions) - 1
}

func (s *surveyDraft) remove(i int) error {
	if _, err := s.question(i); err != nil {
		return err
	}
	s.questions = append(s.questions[:i], s.questions[i+1:]...)
	return nil
}

func (s *surveyDraft) setText(i int, text string) error {
	q, err := s.question(i)
	if err != nil {
		return err
	}
	q.Question = text
	return nil
}

// setType changes the answer kind. Leaving multiple-choice clears the
// options, and they are not restored when switching back.
func (s *surveyDraft) setType(i int, t dto.SurveyType) error {
	if !t.Valid() {
		return ErrUnknownSurveyType
	}
	q, err := s.question(i)
	if err != nil {
		return err
	}
	if t != dto.SurveyMultipleChoice {
		q.Options = nil
	}
	q.Type = t
	return nil
}

func (s *surveyDraft) multipleChoice(i int) (*dto.SurveyQuestion, error) {
	q, err := s.question(i)
	if err != nil {
		return nil, err
	}
	if q.Type != dto.SurveyMultipleChoice {
		return nil, ErrNotMultipleChoice
	}
	return q, nil
}

func (s *surveyDraft) addOption(i int) error {
	q, err := s.multipleChoice(i)
	if err != nil {
		return err
	}
	q.Options = append(q.Options, "")
	return nil
}

func (s *surveyDraft) setOption(i, j int, text string) error {
	q, err := s.multipleChoice(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(q.Options) {
		return ErrIndexOutOfRange
	}
	q.Options[j] = text
	return nil
}

func (s *surveyDraft) removeOption(i, j int) error {
	q, err := s.multipleChoice(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(q.Options) {
		return ErrIndexOutOfRange
	}
	q.Options = append(q.Options[:j], q.Options[j+1:]...)
	return nil
}

func (s *surveyDraft) snapshot() []dto.SurveyQuestion {
	out := make([]dto.SurveyQuestion, len(s.questions))
	for i, q := range s.questions {
		out[i] = q
		out[i].Options = append([]string(nil), q.Options...)
	}
	return out
}

// payload returns nil when the author added no survey questions.
func (s *surveyDraft) payload() *dto.Survey {
	if len(s.questions) == 0 {
		return nil
	}
	survey := &dto.Survey{Questions: make([]dto.SurveyQuestion, 0, len(s.questions))}
	for _, q := range s.questions {
		out := dto.SurveyQuestion{Question: q.Question, Type: q.Type}
		if q.Type == dto.SurveyMultipleChoice {
			out.Options = nonBlank(q.Options)
		}
		survey.Questions = append(survey.Questions, out)
	}
	return survey
}

package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lingualeap/lingualeap/models"
)

// exerciseRunner holds the state of one lesson run: the exercise cursor, the
// answer widget, and the running score. It lives inside mainLoopModel and is
// replaced wholesale when a new lesson starts.
type exerciseRunner struct {
	lesson    models.Lesson
	exercises []models.Exercise
	idx       int

	answer    textinput.Model
	options   []string
	optionIdx int

	grading      bool
	answered     bool
	lastCorrect  bool
	showHint     bool
	correctCount int
}

func newExerciseRunner(lesson models.Lesson, exercises []models.Exercise) exerciseRunner {
	answerInput := textinput.New()
	answerInput.Placeholder = "your answer"
	answerInput.CharLimit = 200
	answerInput.Width = 40
	answerInput.Focus()

	r := exerciseRunner{
		lesson:    lesson,
		exercises: exercises,
		answer:    answerInput,
	}
	r.prepareCurrent()
	return r
}

func (r *exerciseRunner) initCmd() tea.Cmd {
	return textinput.Blink
}

func (r *exerciseRunner) current() models.Exercise {
	return r.exercises[r.idx]
}

// prepareCurrent resets the per-exercise state and decodes the options list
// for multiple-choice tasks. A malformed options payload degrades to free
// text entry.
func (r *exerciseRunner) prepareCurrent() {
	r.answer.SetValue("")
	r.options = nil
	r.optionIdx = 0
	r.answered = false
	r.lastCorrect = false
	r.showHint = false

	ex := r.current()
	if ex.Type == models.ExerciseMultipleChoice && ex.Options != "" {
		var options []string
		if err := json.Unmarshal([]byte(ex.Options), &options); err == nil && len(options) > 0 {
			r.options = options
		}
	}
}

// submittedAnswer returns what the user is answering with: the selected
// option for multiple choice, the typed text otherwise.
func (r *exerciseRunner) submittedAnswer() string {
	if len(r.options) > 0 {
		return r.options[r.optionIdx]
	}
	return r.answer.Value()
}

func (r *exerciseRunner) applyGrade(msg answerGradedMsg) {
	r.grading = false
	if msg.err != nil {
		return
	}
	r.answered = true
	r.lastCorrect = msg.correct
	if msg.correct {
		r.correctCount++
	}
}

func (r *exerciseRunner) lastExercise() bool {
	return r.idx == len(r.exercises)-1
}

func (r *exerciseRunner) advance() {
	r.idx++
	r.prepareCurrent()
}

// score is the lesson result as a percentage of correctly answered exercises.
func (r *exerciseRunner) score() int {
	return r.correctCount * 100 / len(r.exercises)
}

func (m mainLoopModel) updateExercises(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		// Abandoning mid-lesson records nothing.
		m.screen = screenLessons
		m.errMsg = ""
		return m, nil

	case key.Matches(keyMsg, keys.hint):
		if m.runner.current().Hint != "" {
			m.runner.showHint = !m.runner.showHint
		}
		return m, nil

	case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.down):
		// Option selection only; in free text mode these reach the input.
		if len(m.runner.options) > 0 && !m.runner.answered {
			if key.Matches(keyMsg, keys.up) && m.runner.optionIdx > 0 {
				m.runner.optionIdx--
			}
			if key.Matches(keyMsg, keys.down) && m.runner.optionIdx < len(m.runner.options)-1 {
				m.runner.optionIdx++
			}
			return m, nil
		}

	case key.Matches(keyMsg, keys.enter):
		if m.runner.grading {
			return m, nil
		}

		if m.runner.answered {
			if m.runner.lastExercise() {
				return m, m.cmdCompleteLesson()
			}
			m.runner.advance()
			return m, nil
		}

		answer := m.runner.submittedAnswer()
		if strings.TrimSpace(answer) == "" {
			m.errMsg = "Enter an answer first"
			return m, nil
		}
		m.errMsg = ""
		m.runner.grading = true
		return m, m.cmdSubmitAnswer(m.runner.current().ID, answer)
	}

	if len(m.runner.options) == 0 && !m.runner.answered {
		var cmd tea.Cmd
		m.runner.answer, cmd = m.runner.answer.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) viewExercises() string {
	r := m.runner
	ex := r.current()

	var b strings.Builder
	b.WriteString(progressBar(r.idx+1, len(r.exercises), 20))
	b.WriteString("\n\n")
	b.WriteString(exercisePrompt(ex))
	b.WriteString("\n\n")

	if len(r.options) > 0 {
		for i, option := range r.options {
			cursor := "  "
			if i == r.optionIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(option)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("Answer │ [")
		b.WriteString(r.answer.View())
		b.WriteString("]\n")
	}

	if r.showHint && ex.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(ex.Hint)
		b.WriteString("\n")
	}

	switch {
	case r.grading:
		b.WriteString("\nChecking...\n")
	case r.answered && r.lastCorrect:
		b.WriteString("\nCorrect! ")
		b.WriteString(nextPrompt(r))
		b.WriteString("\n")
	case r.answered:
		b.WriteString(fmt.Sprintf("\nIncorrect. The answer was: %s. ", ex.CorrectAnswer))
		b.WriteString(nextPrompt(r))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("LESSON — %s", strings.ToUpper(fitText(r.lesson.Title, 30)))
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: submit/next │ f1: hint │ esc: abandon lesson")
}

func exercisePrompt(ex models.Exercise) string {
	switch ex.Type {
	case models.ExerciseTranslation:
		return "Translate: " + ex.Content
	case models.ExerciseMultipleChoice:
		return ex.Content
	case models.ExerciseListening:
		prompt := "Listen and type what you hear: " + ex.Content
		if ex.AudioPath != "" {
			prompt += "\n(audio: " + ex.AudioPath + ")"
		}
		return prompt
	case models.ExerciseFillBlank:
		return "Fill in the blank: " + ex.Content
	default:
		return ex.Content
	}
}

func nextPrompt(r exerciseRunner) string {
	if r.lastExercise() {
		return "Press enter to finish the lesson."
	}
	return "Press enter for the next exercise."
}

func (m mainLoopModel) cmdSubmitAnswer(exerciseID int64, answer string) tea.Cmd {
	ctx := m.ctx
	progress := m.services.Progress
	userID := m.user.ID

	return func() tea.Msg {
		correct, err := progress.SubmitAnswer(ctx, userID, exerciseID, answer)
		return answerGradedMsg{correct: correct, err: err}
	}
}

func (m mainLoopModel) cmdCompleteLesson() tea.Cmd {
	ctx := m.ctx
	progress := m.services.Progress
	userID := m.user.ID
	lessonID := m.runner.lesson.ID
	score := m.runner.score()

	return func() tea.Msg {
		return lessonCompletedMsg{err: progress.CompleteLesson(ctx, userID, lessonID, score)}
	}
}

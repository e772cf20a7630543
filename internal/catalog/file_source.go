package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"vocational-api/internal/domain"
)

// FileSource carga preguntas y carreras desde archivos JSON. La carga ocurre
// una sola vez por proceso; despues el contenido es inmutable y los lectores
// concurrentes comparten los mismos slices sin locking.
type FileSource struct {
	questionsPath string
	coursesPath   string

	once      sync.Once
	loadErr   error
	questions []domain.Question
	courses   []domain.Course
	dimIndex  map[string]domain.Dimension
}

func NewFileSource(questionsPath, coursesPath string) *FileSource {
	return &FileSource{
		questionsPath: questionsPath,
		coursesPath:   coursesPath,
	}
}

func (s *FileSource) load() {
	if err := decodeFile(s.questionsPath, &s.questions); err != nil {
		s.loadErr = fmt.Errorf("%w: questions: %v", ErrCatalogUnavailable, err)
		return
	}
	if err := decodeFile(s.coursesPath, &s.courses); err != nil {
		s.loadErr = fmt.Errorf("%w: courses: %v", ErrCatalogUnavailable, err)
		return
	}

	s.dimIndex = make(map[string]domain.Dimension, len(s.questions))
	for _, q := range s.questions {
		if _, ok := domain.ParseDimension(string(q.Dimension)); !ok {
			s.loadErr = fmt.Errorf("%w: question %q declares invalid dimension %q", ErrCatalogUnavailable, q.ID, q.Dimension)
			return
		}
		s.dimIndex[q.ID] = q.Dimension
	}
}

func decodeFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *FileSource) Questions(_ context.Context) ([]domain.Question, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.questions, nil
}

func (s *FileSource) Courses(_ context.Context) ([]domain.Course, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.courses, nil
}

func (s *FileSource) DimensionIndex(_ context.Context) (map[string]domain.Dimension, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.dimIndex, nil
}

// Package scheduler абстрагирует периодический запуск задач, чтобы фоновые
// действия можно было вызывать детерминированно в тестах.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler запускает fn с периодом interval до вызова stop.
// После возврата из stop задача больше не вызывается.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// Ticker - реализация на основе time.Ticker
type Ticker struct{}

func NewTicker() *Ticker {
	return &Ticker{}
}

func (Ticker) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				// Проверка quit перед запуском: select выбирает случайно
				select {
				case <-quit:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(quit)
			<-done
		})
	}
}

// Manual - планировщик для тестов, задачи запускаются вызовом Fire
type Manual struct {
	mu    sync.Mutex
	tasks map[int]func()
	next  int
}

func NewManual() *Manual {
	return &Manual{tasks: make(map[int]func())}
}

func (m *Manual) Every(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	id := m.next
	m.next++
	m.tasks[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.tasks, id)
		m.mu.Unlock()
	}
}

// Fire синхронно выполняет все зарегистрированные задачи один раз
func (m *Manual) Fire() {
	m.mu.Lock()
	tasks := make([]func(), 0, len(m.tasks))
	for i := 0; i < m.next; i++ {
		if fn, ok := m.tasks[i]; ok {
			tasks = append(tasks, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range tasks {
		fn()
	}
}

// Active возвращает количество незавершенных задач
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

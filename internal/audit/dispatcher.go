package audit

import "log"

type Event struct {
	Action    string
	Entity    string
	EntityID  *uint
	RequestID string
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.RequestID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	// dispatcher nil descarta eventos; auditoria nunca é pré-requisito
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}

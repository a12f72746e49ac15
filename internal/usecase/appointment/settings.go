package appointment

// AgendaSettings é a janela padrão e o passo da grade, vindos da
// configuração; não é regra de negócio fixa no código
type AgendaSettings struct {
	Open        string
	Close       string
	StepMinutes int
}

package bestgram

type Storage interface {
	AddReport(Report) error           // persist the result of one analysis run
	GetAllReports() ([]Report, error) // return every stored report
}

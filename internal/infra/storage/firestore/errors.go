package firestore

import "errors"

var (
	// ErrInit возвращается при ошибке инициализации клиента Firestore
	ErrInit = errors.New("firestore.repository: failed to init client")

	// ErrInvalidFilter возвращается при фильтре без ID мастера
	ErrInvalidFilter = errors.New("firestore.repository: handyman id is required")

	// ErrQuery возвращается при ошибке выполнения запроса
	ErrQuery = errors.New("firestore.repository: failed to query documents")

	// ErrDecode возвращается при ошибке разбора документа
	ErrDecode = errors.New("firestore.repository: failed to decode document")

	// ErrWrite возвращается при ошибке записи документа
	ErrWrite = errors.New("firestore.repository: failed to write document")
)

package dto

import "time"

type CrearTurnoRequest struct {
	FechaHora     time.Time `json:"fechaHora" validate:"required"`
	EstadoTurnoID *uint     `json:"estadoTurnoId"`
}

type ActualizarTurnoRequest struct {
	ID            uint      `json:"id" validate:"required"`
	FechaHora     time.Time `json:"fechaHora" validate:"required"`
	EstadoTurnoID *uint     `json:"estadoTurnoId"`
}

type TurnoResponse struct {
	ID            uint      `json:"id"`
	FechaHora     time.Time `json:"fechaHora"`
	EstadoTurnoID *uint     `json:"estadoTurnoId"`
	Estado        string    `json:"estado,omitempty"`
}

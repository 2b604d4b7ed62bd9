package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/courses-api/internal/dto"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
	Reports     *ReportHandler
	Students    *StudentHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts the resource routes under prefix and the probes at the root.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	api := r.Group(prefix)

	courses := api.Group("/courses")
	courses.GET("", h.Courses.List)
	courses.POST("", h.Courses.Create)
	courses.GET("/report", h.Reports.Students)
	courses.GET("/report.json", h.Reports.StudentsAs(dto.ReportFormatJSON))
	courses.GET("/report.csv", h.Reports.StudentsAs(dto.ReportFormatCSV))
	courses.GET("/report.pdf", h.Reports.StudentsAs(dto.ReportFormatPDF))
	courses.GET("/:id", h.Courses.Get)
	courses.PUT("/:id", h.Courses.Update)
	courses.DELETE("/:id", h.Courses.Delete)
	courses.POST("/:id/assign/:student_id", h.Enrollments.Assign)
	courses.POST("/:id/unassign/:student_id", h.Enrollments.Unassign)
	courses.POST("/:id/complete/:student_id", h.Enrollments.Complete)

	students := api.Group("/students")
	students.GET("", h.Students.List)
	students.POST("", h.Students.Create)
	students.GET("/:id", h.Students.Get)
	students.PUT("/:id", h.Students.Update)
	students.DELETE("/:id", h.Students.Delete)
}

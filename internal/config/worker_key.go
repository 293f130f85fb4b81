package config

type WorkerKeyStruct struct {
	EnrollmentAuditQueue string
}

var WorkerKey = &WorkerKeyStruct{
	EnrollmentAuditQueue: "enrollment_audit_queue",
}

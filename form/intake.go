package form

// Intake returns the call-assistant requirements questionnaire.
func Intake() Definition {
	return Definition{
		Title:    Text{AR: "نموذج متطلبات المساعد الذكي للمكالمات", EN: "AI Call Assistant Requirements Form"},
		Subtitle: Text{AR: "يرجى تعبئة النموذج لمساعدتنا على فهم احتياجات جامعتكم", EN: "Please fill in this form to help us understand your university's needs"},
		Sections: []Section{
			universitySection(),
			goalsSection(),
			departmentsSection(),
			volumeSection(),
			languagesSection(),
			channelsSection(),
			scenariosSection(),
			knowledgeBaseSection(),
			integrationsSection(),
			escalationSection(),
			securitySection(),
			timelineSection(),
			notesSection(),
		},
	}
}

func universitySection() Section {
	return Section{
		Key:   "university",
		Title: Text{AR: "معلومات الجامعة", EN: "University Information"},
		Fields: []Field{
			{Name: "universityName", Kind: KindText, Required: true,
				Label:       Text{AR: "اسم الجامعة", EN: "University name"},
				Placeholder: Text{AR: "مثال: جامعة المستقبل", EN: "e.g. Future University"}},
			{Name: "contactName", Kind: KindText, Required: true,
				Label: Text{AR: "اسم مسؤول التواصل", EN: "Contact person"}},
			{Name: "jobTitle", Kind: KindText,
				Label: Text{AR: "المسمى الوظيفي", EN: "Job title"}},
			{Name: "email", Kind: KindEmail, Required: true,
				Label: Text{AR: "البريد الإلكتروني", EN: "Email"}},
			{Name: "phone", Kind: KindTel,
				Label: Text{AR: "رقم الهاتف", EN: "Phone number"}},
			{Name: "formDate", Kind: KindDate,
				Label: Text{AR: "تاريخ التعبئة", EN: "Date"}},
		},
	}
}

func goalsSection() Section {
	return Section{
		Key:         "goals",
		Title:       Text{AR: "أهداف المشروع", EN: "Project Goals"},
		Description: Text{AR: "اختر كل ما ينطبق", EN: "Select all that apply"},
		Fields: []Field{
			{Name: "projectGoals", Kind: KindCheckbox,
				Label: Text{AR: "ما الذي تريدون تحقيقه؟", EN: "What do you want to achieve?"},
				Options: []Option{
					{Key: "waitTime", Label: Text{AR: "تقليل وقت انتظار المتصلين", EN: "Reduce caller wait time"}},
					{Key: "allDay", Label: Text{AR: "توفير خدمة على مدار الساعة", EN: "Provide 24/7 service"}},
					{Key: "staffLoad", Label: Text{AR: "تخفيف العبء عن الموظفين", EN: "Reduce staff workload"}},
					{Key: "satisfaction", Label: Text{AR: "رفع رضا الطلاب وأولياء الأمور", EN: "Improve student and parent satisfaction"}},
					{Key: "analytics", Label: Text{AR: "جمع بيانات وتحليلات عن الاستفسارات", EN: "Collect inquiry data and analytics"}},
					{Key: "admissionsSeason", Label: Text{AR: "دعم موسم القبول والتسجيل", EN: "Support the admissions season"}},
				}},
			{Name: "otherGoals", Kind: KindTextarea,
				Label: Text{AR: "أهداف أخرى", EN: "Other goals"}},
		},
	}
}

func departmentsSection() Section {
	return Section{
		Key:   "departments",
		Title: Text{AR: "الإدارات المستهدفة", EN: "Target Departments"},
		Fields: []Field{
			{Name: "departments", Kind: KindCheckbox,
				Label: Text{AR: "الإدارات التي سيخدمها المساعد", EN: "Departments the assistant will serve"},
				Options: []Option{
					{Key: "admissions", Label: Text{AR: "القبول والتسجيل", EN: "Admissions and Registration"}},
					{Key: "studentAffairs", Label: Text{AR: "شؤون الطلاب", EN: "Student Affairs"}},
					{Key: "finance", Label: Text{AR: "الشؤون المالية والرسوم", EN: "Finance and Fees"}},
					{Key: "academic", Label: Text{AR: "الشؤون الأكاديمية", EN: "Academic Affairs"}},
					{Key: "it", Label: Text{AR: "الدعم الفني وتقنية المعلومات", EN: "IT Support"}},
					{Key: "housing", Label: Text{AR: "السكن الجامعي", EN: "Student Housing"}},
					{Key: "graduate", Label: Text{AR: "الدراسات العليا", EN: "Graduate Studies"}},
					{Key: "alumni", Label: Text{AR: "شؤون الخريجين", EN: "Alumni Affairs"}},
				}},
			{Name: "otherDepartments", Kind: KindText,
				Label: Text{AR: "إدارات أخرى", EN: "Other departments"}},
		},
	}
}

func volumeSection() Section {
	percentMin, percentMax := between(0, 100)
	durationMin, durationMax := between(0, 120)
	zero := 0

	return Section{
		Key:         "volume",
		Title:       Text{AR: "حجم المكالمات", EN: "Call Volume"},
		Description: Text{AR: "تكفي التقديرات التقريبية", EN: "Rough estimates are fine"},
		Fields: []Field{
			{Name: "dailyCalls", Kind: KindNumber, Min: &zero,
				Label: Text{AR: "متوسط عدد المكالمات اليومية", EN: "Average daily calls"}},
			{Name: "peakCalls", Kind: KindNumber, Min: &zero,
				Label: Text{AR: "عدد المكالمات في أوقات الذروة", EN: "Calls per day at peak times"}},
			{Name: "peakSeasons", Kind: KindText,
				Label: Text{AR: "مواسم الذروة", EN: "Peak seasons"},
				Hint:  Text{AR: "مثل بداية الفصل الدراسي أو فترة القبول", EN: "e.g. start of semester or admissions period"}},
			{Name: "avgCallMinutes", Kind: KindNumber, Min: durationMin, Max: durationMax,
				Label: Text{AR: "متوسط مدة المكالمة (بالدقائق)", EN: "Average call duration (minutes)"}},
			{Name: "inquiryPercent", Kind: KindNumber, Min: percentMin, Max: percentMax,
				Label: Text{AR: "نسبة الاستفسارات العامة (%)", EN: "General inquiries (%)"}},
			{Name: "requestPercent", Kind: KindNumber, Min: percentMin, Max: percentMax,
				Label: Text{AR: "نسبة الطلبات والمعاملات (%)", EN: "Requests and transactions (%)"}},
			{Name: "complaintPercent", Kind: KindNumber, Min: percentMin, Max: percentMax,
				Label: Text{AR: "نسبة الشكاوى (%)", EN: "Complaints (%)"}},
		},
	}
}

func languagesSection() Section {
	return Section{
		Key:   "languages",
		Title: Text{AR: "اللغات واللهجات", EN: "Languages and Dialects"},
		Fields: []Field{
			{Name: "languages", Kind: KindCheckbox,
				Label: Text{AR: "اللغات المطلوب دعمها", EN: "Languages to support"},
				Options: []Option{
					{Key: "msa", Label: Text{AR: "العربية الفصحى", EN: "Modern Standard Arabic"}},
					{Key: "gulf", Label: Text{AR: "اللهجة الخليجية", EN: "Gulf dialect"}},
					{Key: "egyptian", Label: Text{AR: "اللهجة المصرية", EN: "Egyptian dialect"}},
					{Key: "levantine", Label: Text{AR: "اللهجة الشامية", EN: "Levantine dialect"}},
					{Key: "english", Label: Text{AR: "الإنجليزية", EN: "English"}},
					{Key: "french", Label: Text{AR: "الفرنسية", EN: "French"}},
					{Key: "urdu", Label: Text{AR: "الأردية", EN: "Urdu"}},
				}},
			{Name: "autoDetectLanguage", Kind: KindYesNo,
				Label: Text{AR: "هل يجب اكتشاف لغة المتصل تلقائياً؟", EN: "Should the caller's language be detected automatically?"}},
		},
	}
}

func channelsSection() Section {
	return Section{
		Key:   "channels",
		Title: Text{AR: "قنوات التواصل", EN: "Communication Channels"},
		Fields: []Field{
			{Name: "channels", Kind: KindCheckbox,
				Label: Text{AR: "القنوات المستخدمة حالياً", EN: "Channels in use today"},
				Options: []Option{
					{Key: "phone", Label: Text{AR: "المكالمات الهاتفية", EN: "Phone calls"}},
					{Key: "whatsapp", Label: Text{AR: "واتساب", EN: "WhatsApp"}},
					{Key: "webChat", Label: Text{AR: "محادثة الموقع الإلكتروني", EN: "Website chat"}},
					{Key: "app", Label: Text{AR: "تطبيق الجامعة", EN: "University app"}},
					{Key: "email", Label: Text{AR: "البريد الإلكتروني", EN: "Email"}},
					{Key: "sms", Label: Text{AR: "الرسائل النصية", EN: "SMS"}},
				}},
			{Name: "currentPhoneSystem", Kind: KindText,
				Label: Text{AR: "نظام الهاتف الحالي", EN: "Current phone system"}},
		},
	}
}

func scenariosSection() Section {
	return Section{
		Key:   "scenarios",
		Title: Text{AR: "سيناريوهات الاستخدام", EN: "Use Case Scenarios"},
		Fields: []Field{
			{Name: "scenarios", Kind: KindCheckbox,
				Label: Text{AR: "ما الذي يجب أن يتعامل معه المساعد؟", EN: "What should the assistant handle?"},
				Options: []Option{
					{Key: "admissionRequirements", Label: Text{AR: "الاستفسار عن شروط القبول", EN: "Admission requirements inquiries"}},
					{Key: "applicationStatus", Label: Text{AR: "متابعة حالة طلب الالتحاق", EN: "Application status follow-up"}},
					{Key: "fees", Label: Text{AR: "الاستفسار عن الرسوم وطرق الدفع", EN: "Fees and payment methods"}},
					{Key: "schedules", Label: Text{AR: "الجداول الدراسية ومواعيد الاختبارات", EN: "Class and exam schedules"}},
					{Key: "transcripts", Label: Text{AR: "طلب السجل الأكاديمي والوثائق", EN: "Transcript and document requests"}},
					{Key: "appointments", Label: Text{AR: "حجز المواعيد", EN: "Appointment booking"}},
					{Key: "campusInfo", Label: Text{AR: "معلومات عن الحرم الجامعي والخدمات", EN: "Campus and services information"}},
					{Key: "complaints", Label: Text{AR: "استقبال الشكاوى والمقترحات", EN: "Complaints and suggestions"}},
				}},
			{Name: "otherScenarios", Kind: KindTextarea,
				Label: Text{AR: "سيناريوهات أخرى", EN: "Other scenarios"}},
		},
	}
}

func knowledgeBaseSection() Section {
	return Section{
		Key:         "knowledgeBase",
		Title:       Text{AR: "قاعدة المعرفة", EN: "Knowledge Base"},
		Description: Text{AR: "ما المواد المتوفرة لتغذية المساعد بالمعلومات؟", EN: "What reference material is available to power the assistant?"},
		Fields: []Field{
			{Name: "kbItems", Kind: KindCheckbox,
				Label: Text{AR: "المواد المتوفرة", EN: "Available material"},
				Options: []Option{
					{Key: "faq", Label: Text{AR: "الأسئلة الشائعة", EN: "FAQ documents"}},
					{Key: "handbook", Label: Text{AR: "دليل الطالب والبرامج الأكاديمية", EN: "Student handbook and program catalog"}},
					{Key: "policies", Label: Text{AR: "اللوائح والسياسات", EN: "Regulations and policies"}},
					{Key: "calendar", Label: Text{AR: "التقويم الأكاديمي", EN: "Academic calendar"}},
					{Key: "feeSchedules", Label: Text{AR: "جداول الرسوم", EN: "Fee schedules"}},
					{Key: "website", Label: Text{AR: "محتوى الموقع الإلكتروني", EN: "Website content"}},
					{Key: "recordings", Label: Text{AR: "تسجيلات مكالمات سابقة", EN: "Past call recordings"}},
				}},
			{Name: "kbFormat", Kind: KindText,
				Label: Text{AR: "صيغة الملفات المتوفرة", EN: "Available file formats"},
				Hint:  Text{AR: "PDF، Word، صفحات ويب...", EN: "PDF, Word, web pages..."}},
			{Name: "kbUpToDate", Kind: KindYesNo,
				Label: Text{AR: "هل المحتوى محدّث؟", EN: "Is the content up to date?"}},
			{Name: "kbOwner", Kind: KindText,
				Label: Text{AR: "الجهة المسؤولة عن تحديث المحتوى", EN: "Who keeps the content updated"}},
		},
	}
}

func integrationsSection() Section {
	return Section{
		Key:   "integrations",
		Title: Text{AR: "التكامل مع الأنظمة", EN: "System Integrations"},
		Fields: []Field{
			{Name: "integrations", Kind: KindCheckbox,
				Label: Text{AR: "الأنظمة المطلوب ربطها", EN: "Systems to integrate with"},
				Options: []Option{
					{Key: "sis", Label: Text{AR: "نظام معلومات الطلاب", EN: "Student information system (SIS)"}},
					{Key: "crm", Label: Text{AR: "نظام إدارة علاقات العملاء", EN: "CRM"}},
					{Key: "lms", Label: Text{AR: "نظام إدارة التعلم", EN: "Learning management system (LMS)"}},
					{Key: "erp", Label: Text{AR: "نظام تخطيط الموارد", EN: "ERP"}},
					{Key: "ivr", Label: Text{AR: "نظام الرد الصوتي التفاعلي (IVR)", EN: "Interactive voice response (IVR)"}},
					{Key: "ticketing", Label: Text{AR: "نظام التذاكر", EN: "Ticketing system"}},
				}},
			{Name: "hasIVR", Kind: KindYesNo,
				Label: Text{AR: "هل يوجد نظام رد صوتي تفاعلي حالياً؟", EN: "Is an IVR in place today?"}},
			{Name: "systemNames", Kind: KindTextarea,
				Label: Text{AR: "أسماء الأنظمة المستخدمة", EN: "Names of the systems in use"}},
		},
	}
}

func escalationSection() Section {
	zero := 0

	return Section{
		Key:   "escalation",
		Title: Text{AR: "التحويل إلى موظف", EN: "Escalation to Staff"},
		Fields: []Field{
			{Name: "escalationNeeded", Kind: KindYesNo,
				Label: Text{AR: "هل يلزم تحويل بعض المكالمات إلى موظف؟", EN: "Must some calls be handed to a staff member?"}},
			{Name: "escalationCases", Kind: KindTextarea,
				Label: Text{AR: "حالات التحويل", EN: "When to escalate"}},
			{Name: "escalationHours", Kind: KindText,
				Label: Text{AR: "ساعات توفر الموظفين", EN: "Staff availability hours"}},
			{Name: "agentsCount", Kind: KindNumber, Min: &zero,
				Label: Text{AR: "عدد الموظفين المتاحين", EN: "Number of available agents"}},
		},
	}
}

func securitySection() Section {
	return Section{
		Key:   "security",
		Title: Text{AR: "الأمان والخصوصية", EN: "Security and Privacy"},
		Fields: []Field{
			{Name: "recordCalls", Kind: KindYesNo,
				Label: Text{AR: "هل يُسمح بتسجيل المكالمات؟", EN: "May calls be recorded?"}},
			{Name: "localHosting", Kind: KindYesNo,
				Label: Text{AR: "هل يجب استضافة البيانات داخل الدولة؟", EN: "Must data be hosted in-country?"}},
			{Name: "identityVerification", Kind: KindYesNo,
				Label: Text{AR: "هل يلزم التحقق من هوية المتصل؟", EN: "Must callers be identified?"}},
			{Name: "complianceNotes", Kind: KindTextarea,
				Label: Text{AR: "متطلبات تنظيمية أخرى", EN: "Other regulatory requirements"}},
		},
	}
}

func timelineSection() Section {
	zero := 0

	return Section{
		Key:   "timeline",
		Title: Text{AR: "الجدول الزمني والميزانية", EN: "Timeline and Budget"},
		Fields: []Field{
			{Name: "startDate", Kind: KindDate,
				Label: Text{AR: "تاريخ البدء المتوقع", EN: "Expected start date"}},
			{Name: "launchDate", Kind: KindDate,
				Label: Text{AR: "تاريخ الإطلاق المطلوب", EN: "Target launch date"}},
			{Name: "budget", Kind: KindNumber, Min: &zero,
				Label: Text{AR: "الميزانية التقديرية", EN: "Estimated budget"},
				Hint:  Text{AR: "بالعملة المحلية", EN: "In local currency"}},
			{Name: "pilotFirst", Kind: KindYesNo,
				Label: Text{AR: "هل تفضلون البدء بمرحلة تجريبية؟", EN: "Would you start with a pilot?"}},
		},
	}
}

func notesSection() Section {
	return Section{
		Key:   "notes",
		Title: Text{AR: "ملاحظات إضافية", EN: "Additional Notes"},
		Fields: []Field{
			{Name: "successCriteria", Kind: KindTextarea,
				Label: Text{AR: "معايير نجاح المشروع", EN: "Project success criteria"}},
			{Name: "additionalNotes", Kind: KindTextarea,
				Label: Text{AR: "ملاحظات أخرى", EN: "Other notes"}},
		},
	}
}

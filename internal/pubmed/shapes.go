// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

// Europe PMC search response shapes. Every field is optional or
// nullable; pointers and slices keep null and absent fields as nil so
// that structural validation stays lenient. Business-required fields
// (title, abstract) are enforced during normalization instead.

type searchResponse struct {
	HitCount   *int        `json:"hitCount"`
	ResultList *resultList `json:"resultList"`
}

type resultList struct {
	Result []rawResult `json:"result"`
}

type rawResult struct {
	ID           *string `json:"id"`
	Source       *string `json:"source"`
	PMID         *string `json:"pmid"`
	PMCID        *string `json:"pmcid"`
	DOI          *string `json:"doi"`
	Title        *string `json:"title"`
	AbstractText *string `json:"abstractText"`

	AuthorList *authorList `json:"authorList"`

	JournalInfo *journalInfo `json:"journalInfo"`

	FirstPublicationDate *string `json:"firstPublicationDate"`
	PubYear              *string `json:"pubYear"`

	CitedByCount *int `json:"citedByCount"`

	KeywordList     *keywordList     `json:"keywordList"`
	MeshHeadingList *meshHeadingList `json:"meshHeadingList"`
	GrantsList      *grantsList      `json:"grantsList"`

	IsOpenAccess    *string          `json:"isOpenAccess"`
	FullTextURLList *fullTextURLList `json:"fullTextUrlList"`
}

type authorList struct {
	Author []rawAuthor `json:"author"`
}

type rawAuthor struct {
	FullName  *string        `json:"fullName"`
	FirstName *string        `json:"firstName"`
	LastName  *string        `json:"lastName"`
	Initials  *string        `json:"initials"`
	AuthorID  *authorID      `json:"authorId"`
	AffDetail *affDetailList `json:"authorAffiliationDetailsList"`
}

type authorID struct {
	Type  *string `json:"type"`
	Value *string `json:"value"`
}

type affDetailList struct {
	AuthorAffiliation []rawAffiliation `json:"authorAffiliation"`
}

type rawAffiliation struct {
	Affiliation *string `json:"affiliation"`
}

type journalInfo struct {
	Journal *rawJournal `json:"journal"`
}

type rawJournal struct {
	Title *string `json:"title"`
	ISSN  *string `json:"issn"`
	ESSN  *string `json:"essn"`
}

type keywordList struct {
	Keyword []string `json:"keyword"`
}

type meshHeadingList struct {
	MeshHeading []rawMeshHeading `json:"meshHeading"`
}

type rawMeshHeading struct {
	MajorTopicYN      *string            `json:"majorTopic_YN"`
	DescriptorName    *string            `json:"descriptorName"`
	MeshQualifierList *meshQualifierList `json:"meshQualifierList"`
}

type meshQualifierList struct {
	MeshQualifier []rawMeshQualifier `json:"meshQualifier"`
}

type rawMeshQualifier struct {
	QualifierName *string `json:"qualifierName"`
	MajorTopicYN  *string `json:"majorTopic_YN"`
}

type grantsList struct {
	Grant []rawGrant `json:"grant"`
}

type rawGrant struct {
	GrantID *string `json:"grantId"`
	Agency  *string `json:"agency"`
}

type fullTextURLList struct {
	FullTextURL []rawFullTextURL `json:"fullTextUrl"`
}

type rawFullTextURL struct {
	Availability  *string `json:"availability"`
	DocumentStyle *string `json:"documentStyle"`
	Site          *string `json:"site"`
	URL           *string `json:"url"`
}
